package features

import (
	"testing"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmptyInput(t *testing.T) {
	result := Validate(models.RawInput{})
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, len(FeatureOrder))
}

func TestValidateZeroIsValid(t *testing.T) {
	raw := models.RawInput{}
	for _, field := range FeatureOrder {
		raw[field] = 0
	}
	result := Validate(raw)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateNilAndBlankValues(t *testing.T) {
	raw := models.RawInput{}
	for _, field := range FeatureOrder {
		raw[field] = 1
	}
	raw["glucose"] = nil
	raw["stroke"] = "   "

	result := Validate(raw)
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "glucose")
	assert.Contains(t, result.Errors[1], "stroke")
}

func TestValidateDoesNotMutate(t *testing.T) {
	raw := models.RawInput{"age": "45"}
	Validate(raw)
	assert.Equal(t, "45", raw["age"])
	assert.Len(t, raw, 1)
}
