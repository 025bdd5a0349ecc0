package features

import (
	"testing"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncoder() *Encoder {
	return NewEncoder(vocabulary.Default())
}

func TestEncodeRowEmptyInput(t *testing.T) {
	_, err := newTestEncoder().EncodeRow(models.RawInput{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestGlucoseUnitDetection(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float32
	}{
		{"mgdl converts", 150, 8.33},
		{"mgdl boundary stays", 30, 30},
		{"mmol passes through", 6.5, 6.5},
		{"string mgdl converts", "180", 10},
		{"garbage fills zero", "n/a", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, err := newTestEncoder().EncodeRow(models.RawInput{"glucose": tc.in})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, row["glucose"], 0.001)
		})
	}
}

func TestHeightUnitDetection(t *testing.T) {
	enc := newTestEncoder()

	row, err := enc.EncodeRow(models.RawInput{"height": 170})
	require.NoError(t, err)
	assert.InDelta(t, 1.7, row["height"], 0.001)

	row, err = enc.EncodeRow(models.RawInput{"height": 1.7})
	require.NoError(t, err)
	assert.InDelta(t, 1.7, row["height"], 0.001)

	// Exactly 3 is read as meters already.
	row, err = enc.EncodeRow(models.RawInput{"height": 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, row["height"], 0.001)
}

func TestBMIDerivation(t *testing.T) {
	enc := newTestEncoder()

	// Missing BMI derives from converted height and weight.
	row, err := enc.EncodeRow(models.RawInput{"height": 170, "weight": 70})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, row["bmi"], 0.001)

	// Zero BMI also derives.
	row, err = enc.EncodeRow(models.RawInput{"height": 1.7, "weight": 70, "bmi": 0})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, row["bmi"], 0.001)

	// A provided nonzero value wins even with height and weight present.
	row, err = enc.EncodeRow(models.RawInput{"height": 1.7, "weight": 70, "bmi": 31.5})
	require.NoError(t, err)
	assert.InDelta(t, 31.5, row["bmi"], 0.001)

	// No height: BMI stays missing and fills zero.
	row, err = enc.EncodeRow(models.RawInput{"weight": 70})
	require.NoError(t, err)
	assert.Zero(t, row["bmi"])
}

func TestCategoricalMapping(t *testing.T) {
	enc := newTestEncoder()

	for _, token := range []interface{}{"Female", "f", "perempuan", "WANITA ", 0, "0"} {
		row, err := enc.EncodeRow(models.RawInput{"gender": token})
		require.NoError(t, err)
		assert.Equal(t, float32(0), row["gender"], "token %v", token)
	}
	for _, token := range []interface{}{"Male", "pria", "m", 1, 1.0} {
		row, err := enc.EncodeRow(models.RawInput{"gender": token})
		require.NoError(t, err)
		assert.Equal(t, float32(1), row["gender"], "token %v", token)
	}

	// Unrecognized tokens resolve to the zero-fill default, not an error.
	row, err := enc.EncodeRow(models.RawInput{"gender": "unknown"})
	require.NoError(t, err)
	assert.Equal(t, float32(0), row["gender"])

	row, err = enc.EncodeRow(models.RawInput{"family_diabetes": "Ya", "stroke": "y", "hypertensive": "ada"})
	require.NoError(t, err)
	assert.Equal(t, float32(1), row["family_diabetes"])
	assert.Equal(t, float32(1), row["stroke"])
	assert.Equal(t, float32(1), row["hypertensive"])
}

func TestEncodeFillsEveryField(t *testing.T) {
	row, err := newTestEncoder().EncodeRow(models.RawInput{"age": "not a number"})
	require.NoError(t, err)
	require.Len(t, row, len(FeatureOrder))
	for _, field := range FeatureOrder {
		_, ok := row[field]
		assert.True(t, ok, "field %s missing", field)
	}
}

func TestEncodeIdempotence(t *testing.T) {
	enc := newTestEncoder()
	canonical := models.RawInput{
		"age": 45.0, "gender": 1.0, "pulse_rate": 72.0, "systolic_bp": 130.0,
		"diastolic_bp": 85.0, "glucose": 8.33, "height": 1.7, "weight": 70.0,
		"bmi": 24.22, "family_diabetes": 1.0, "hypertensive": 0.0,
		"family_hypertension": 0.0, "cardiovascular_disease": 0.0, "stroke": 0.0,
	}

	row, err := enc.EncodeRow(canonical)
	require.NoError(t, err)
	for field, want := range canonical {
		assert.InDelta(t, want.(float64), float64(row[field]), 0.001, "field %s", field)
	}
}

func TestEncodeEndToEndScenario(t *testing.T) {
	raw := models.RawInput{
		"age": 45, "gender": "Male", "pulse_rate": 72, "systolic_bp": 130,
		"diastolic_bp": 85, "glucose": 150, "height": 170, "weight": 70,
		"bmi": 0, "family_diabetes": "Yes", "hypertensive": "No",
		"family_hypertension": "No", "cardiovascular_disease": "No", "stroke": "No",
	}

	row, err := newTestEncoder().EncodeRow(raw)
	require.NoError(t, err)

	assert.InDelta(t, 8.33, row["glucose"], 0.001)
	assert.InDelta(t, 1.7, row["height"], 0.001)
	assert.InDelta(t, 24.22, row["bmi"], 0.001)
	assert.Equal(t, float32(1), row["gender"])
	assert.Equal(t, float32(1), row["family_diabetes"])
	for _, field := range []string{"hypertensive", "family_hypertension", "cardiovascular_disease", "stroke"} {
		assert.Equal(t, float32(0), row[field])
	}
}

func TestEncodeDatasetDropsUnmappableTargets(t *testing.T) {
	rows := []models.RawInput{
		{"age": 40, "diabetic": "Yes"},
		{"age": 41, "diabetic": "maybe"},
		{"age": 42, "diabetic": "negative"},
	}

	samples, err := newTestEncoder().EncodeDataset(rows, true)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 1, samples[0].Target)
	assert.Equal(t, 0, samples[1].Target)
}

func TestEncodeDatasetServingModeKeepsAllRows(t *testing.T) {
	rows := []models.RawInput{
		{"age": 40},
		{"age": "garbage"},
	}

	samples, err := newTestEncoder().EncodeDataset(rows, false)
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestVectorFollowsCanonicalOrder(t *testing.T) {
	row, err := newTestEncoder().EncodeRow(models.RawInput{"age": 45, "stroke": "yes"})
	require.NoError(t, err)

	vec := Vector(row)
	require.Len(t, vec, len(FeatureOrder))
	assert.Equal(t, float32(45), vec[0])
	assert.Equal(t, float32(1), vec[len(vec)-1])
}
