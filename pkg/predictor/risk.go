package predictor

// Five ordered clinical risk bands, lower bound inclusive.
const (
	RiskVeryHigh = "Very High"
	RiskHigh     = "High"
	RiskModerate = "Moderate"
	RiskLow      = "Low"
	RiskVeryLow  = "Very Low"
)

// Interpret maps a probability to the five-band clinical tier and its fixed
// guidance text.
func Interpret(probability float64) (string, string) {
	switch {
	case probability >= 0.8:
		return RiskVeryHigh, "Very significant risk. Consult a physician immediately."
	case probability >= 0.6:
		return RiskHigh, "High risk. Further clinical examination is required."
	case probability >= 0.4:
		return RiskModerate, "Moderate risk. Monitor lifestyle and diet."
	case probability >= 0.2:
		return RiskLow, "Low risk. Maintain a healthy lifestyle."
	default:
		return RiskVeryLow, "Minimal risk observed."
	}
}

// APIRiskLevel is the coarser three-band variant served on the web API
// surface. The thresholds differ from the five-band set on purpose; the two
// surfaces have drifted historically and must stay distinct.
func APIRiskLevel(probability float64) string {
	switch {
	case probability >= 0.7:
		return RiskHigh
	case probability >= 0.4:
		return RiskModerate
	default:
		return RiskLow
	}
}
