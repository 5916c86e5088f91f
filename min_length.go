package passwordvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultMinLength is the minimum password length used by [DefaultRules]
// and [Builder.RequireMinLength].
const DefaultMinLength = 8

type minLengthRule struct {
	validation.LengthRule
	min int
}

// MinLength returns a validation rule that checks if a password has at
// least min characters, counted as Unicode code points. A min of zero or
// less accepts every password, including the empty string.
func MinLength(min int) Rule {
	return &minLengthRule{
		LengthRule: validation.RuneLength(min, 0),
		min:        min,
	}
}

func (r *minLengthRule) Validate(password string) error {
	if r.min <= 0 {
		return nil
	}
	// Ozzo skips empty values, but an empty password is still too short.
	if password == "" {
		return ErrTooShort
	}
	if err := r.LengthRule.Validate(password); err != nil {
		return ErrTooShort
	}
	return nil
}

func (r *minLengthRule) Describe(schema *openapi3.Schema) error {
	if r.min > 0 {
		schema.MinLength = uint64(r.min)
	}
	return nil
}
