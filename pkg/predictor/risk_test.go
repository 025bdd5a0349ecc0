package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretBandBoundaries(t *testing.T) {
	cases := []struct {
		probability float64
		want        string
	}{
		{0.95, RiskVeryHigh},
		{0.8, RiskVeryHigh},
		{0.79999, RiskHigh},
		{0.6, RiskHigh},
		{0.59999, RiskModerate},
		{0.4, RiskModerate},
		{0.39999, RiskLow},
		{0.2, RiskLow},
		{0.1999, RiskVeryLow},
		{0.0, RiskVeryLow},
	}
	for _, tc := range cases {
		tier, narrative := Interpret(tc.probability)
		assert.Equal(t, tc.want, tier, "probability %v", tc.probability)
		assert.NotEmpty(t, narrative)
	}
}

func TestAPIRiskLevelUsesCoarserThresholds(t *testing.T) {
	assert.Equal(t, RiskHigh, APIRiskLevel(0.7))
	assert.Equal(t, RiskModerate, APIRiskLevel(0.69999))
	assert.Equal(t, RiskModerate, APIRiskLevel(0.4))
	assert.Equal(t, RiskLow, APIRiskLevel(0.39999))

	// 0.75 is High on the API surface but still High (not Very High) on the
	// clinical surface; the sets drift at 0.7 vs 0.8 and must stay apart.
	assert.Equal(t, RiskHigh, APIRiskLevel(0.75))
	tier, _ := Interpret(0.75)
	assert.Equal(t, RiskHigh, tier)
	assert.Equal(t, RiskHigh, APIRiskLevel(0.79))
	tier, _ = Interpret(0.85)
	assert.Equal(t, RiskVeryHigh, tier)
	assert.Equal(t, RiskHigh, APIRiskLevel(0.85))
}
