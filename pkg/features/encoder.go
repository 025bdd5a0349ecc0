package features

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/vocabulary"
)

// Unit auto-detection cut-offs. Fasting glucose in mmol/L sits around 4-7
// while mg/dL readings start around 70, so any value above 30 is read as
// mg/dL. Height in meters never exceeds 3; larger values are centimeters.
// Carried over from the trained model's preprocessing; do not retune without
// clinical sign-off.
const (
	glucoseMgdlCutoff  = 30.0
	glucoseMgdlPerMmol = 18.0
	heightCmCutoff     = 3.0
)

// ErrEmptyInput marks input that was structurally empty before processing.
// A row with bad fields is never rejected; bad fields fill with zero instead.
var ErrEmptyInput = errors.New("input row is empty")

// Sample is one encoded dataset row. Target is only meaningful when the row
// was encoded in training mode.
type Sample struct {
	Row    models.FeatureRow
	Target int
}

// Encoder turns raw heterogeneous patient input into the fixed 14-field
// numeric row the classifier expects. It is stateless and safe for
// concurrent use.
type Encoder struct {
	vocab vocabulary.Vocabulary
}

func NewEncoder(vocab vocabulary.Vocabulary) *Encoder {
	return &Encoder{vocab: vocab}
}

// EncodeRow encodes one serving-path row. Missing and unparseable fields fill
// with zero after unit conversion and BMI derivation have been attempted.
func (e *Encoder) EncodeRow(raw models.RawInput) (models.FeatureRow, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	vals := e.encode(raw)
	return finalize(vals), nil
}

// EncodeDataset encodes a batch row by row. In training mode the target label
// is normalized through the positive/negative vocabulary and rows whose
// target fails to map are dropped; that is the only row-dropping step.
func (e *Encoder) EncodeDataset(rows []models.RawInput, isTraining bool) ([]Sample, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	samples := make([]Sample, 0, len(rows))
	for _, raw := range rows {
		if len(raw) == 0 {
			continue
		}
		vals := e.encode(raw)
		sample := Sample{Row: finalize(vals)}
		if isTraining {
			target, ok := e.encodeTarget(raw)
			if !ok {
				continue
			}
			sample.Target = target
		}
		samples = append(samples, sample)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	return samples, nil
}

// encode runs steps 1-5 of the pipeline and returns the row with NaN still
// marking missing values.
func (e *Encoder) encode(raw models.RawInput) map[string]float64 {
	vals := make(map[string]float64, len(FeatureOrder))

	// Schema completion and numeric coercion.
	for _, field := range FeatureOrder {
		vals[field] = math.NaN()
		if !isNumericField(field) {
			continue
		}
		if v, ok := raw[field]; ok {
			if f, err := toFloat(v); err == nil {
				vals[field] = f
			}
		}
	}

	// Glucose arriving in mg/dL is converted to the dataset's mmol/L.
	if g := vals["glucose"]; !math.IsNaN(g) && g > glucoseMgdlCutoff {
		vals["glucose"] = round2(g / glucoseMgdlPerMmol)
	}

	// Height arriving in centimeters is converted to meters.
	if h := vals["height"]; !math.IsNaN(h) && h > heightCmCutoff {
		vals["height"] = round2(h / 100)
	}

	// BMI is derived only when absent or zero; a provided nonzero value wins
	// even when height and weight are also present.
	bmi := vals["bmi"]
	if math.IsNaN(bmi) || bmi == 0 {
		h, w := vals["height"], vals["weight"]
		if !math.IsNaN(h) && h > 0 && !math.IsNaN(w) {
			vals["bmi"] = round2(w / (h * h))
		}
	}

	if v, ok := raw["gender"]; ok {
		if code, found := e.vocab.LookupGender(tokenize(v)); found {
			vals["gender"] = float64(code)
		}
	}
	if v, ok := raw["stroke"]; ok {
		if code, found := e.vocab.LookupStroke(tokenize(v)); found {
			vals["stroke"] = float64(code)
		}
	}
	for _, field := range BinaryFields {
		if v, ok := raw[field]; ok {
			if code, found := e.vocab.LookupBinary(tokenize(v)); found {
				vals[field] = float64(code)
			}
		}
	}

	return vals
}

func (e *Encoder) encodeTarget(raw models.RawInput) (int, bool) {
	v, ok := raw[TargetField]
	if !ok {
		return 0, false
	}
	return e.vocab.LookupTarget(tokenize(v))
}

// finalize fills anything still missing with zero and casts to the float32
// width the classifier was trained with.
func finalize(vals map[string]float64) models.FeatureRow {
	row := make(models.FeatureRow, len(FeatureOrder))
	for _, field := range FeatureOrder {
		v := vals[field]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		row[field] = float32(v)
	}
	return row
}

// Vector lays a feature row out in canonical training order.
func Vector(row models.FeatureRow) []float32 {
	vec := make([]float32, len(FeatureOrder))
	for i, field := range FeatureOrder {
		vec[i] = row[field]
	}
	return vec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// tokenize renders any raw categorical value as the lowercased trimmed token
// the vocabulary tables are keyed by. Whole-number floats print without a
// decimal part so numeric 0/1 answers keep matching.
func tokenize(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case string:
		return strings.ToLower(strings.TrimSpace(val))
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", val)))
	}
}

func toFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case json.Number:
		return val.Float64()
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, fmt.Errorf("empty numeric value")
		}
		return strconv.ParseFloat(trimmed, 64)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}
