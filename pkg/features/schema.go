package features

// TargetField is the training label column of the DiaBD dataset.
const TargetField = "diabetic"

// FeatureOrder is the canonical 14-field order the classifier was trained on.
// It must match the artifact's feature list exactly; everything that builds or
// consumes a feature vector iterates this slice, never a map.
var FeatureOrder = []string{
	"age", "gender", "pulse_rate", "systolic_bp", "diastolic_bp",
	"glucose", "height", "weight", "bmi", "family_diabetes",
	"hypertensive", "family_hypertension", "cardiovascular_disease", "stroke",
}

// NumericFields are coerced leniently: anything that fails to parse becomes
// missing, never an error.
var NumericFields = []string{
	"age", "pulse_rate", "systolic_bp", "diastolic_bp", "glucose", "height", "weight", "bmi",
}

// BinaryFields share the yes/no vocabulary. Gender and stroke carry their own
// tables and are handled separately.
var BinaryFields = []string{
	"family_diabetes", "hypertensive", "family_hypertension", "cardiovascular_disease",
}

// DisplayNames maps internal field names to the clinical wording shown in
// feature-importance listings.
var DisplayNames = map[string]string{
	"age":                    "Patient Age",
	"gender":                 "Gender",
	"pulse_rate":             "Pulse Rate",
	"systolic_bp":            "Systolic Blood Pressure",
	"diastolic_bp":           "Diastolic Blood Pressure",
	"glucose":                "Blood Glucose Level",
	"height":                 "Patient Height",
	"weight":                 "Patient Weight",
	"bmi":                    "Body Mass Index (BMI)",
	"family_diabetes":        "Family Diabetes History",
	"hypertensive":           "Hypertension Status",
	"family_hypertension":    "Family Hypertension History",
	"cardiovascular_disease": "Cardiovascular History",
	"stroke":                 "Stroke History",
}

// Range is a closed clinical reference interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ClinicalThresholds holds the WHO reference bands used by dataset analysis.
var ClinicalThresholds = map[string]map[string]Range{
	"glucose": {
		"normal":      {Min: 4.0, Max: 5.6},
		"prediabetes": {Min: 5.7, Max: 6.9},
		"diabetes":    {Min: 7.0, Max: 99.0},
	},
	"bmi": {
		"normal":     {Min: 18.5, Max: 24.9},
		"overweight": {Min: 25.0, Max: 29.9},
		"obese":      {Min: 30.0, Max: 99.0},
	},
}

// DisplayName returns the clinical wording for a field, falling back to the
// raw name when no mapping exists.
func DisplayName(field string) string {
	if name, ok := DisplayNames[field]; ok {
		return name
	}
	return field
}

func isNumericField(field string) bool {
	for _, f := range NumericFields {
		if f == field {
			return true
		}
	}
	return false
}
