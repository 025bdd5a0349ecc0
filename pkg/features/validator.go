package features

import (
	"fmt"
	"strings"

	"github.com/diabd/platform/pkg/common/models"
)

// Validate checks completeness of a raw row before encoding: every canonical
// field must be present, non-nil and non-blank. The numeric value 0 is valid.
// Validation is advisory only; it never mutates or coerces, and the encoder
// does not depend on it.
func Validate(raw models.RawInput) models.ValidationResult {
	errs := []string{}

	for _, field := range FeatureOrder {
		val, ok := raw[field]
		if !ok {
			errs = append(errs, fmt.Sprintf("missing field: %s", field))
			continue
		}
		if val == nil {
			errs = append(errs, fmt.Sprintf("value cannot be null for: %s", field))
			continue
		}
		if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("empty value for field: %s", field))
		}
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
