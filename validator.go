package passwordvalidation

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validator holds an immutable, ordered list of rules. Use [Builder] or
// [DefaultRules] to create one. A Validator holds no per-call state, so a
// single instance is safe for concurrent use and for any number of
// Validate calls.
type Validator struct {
	rules []Rule
}

// Validate runs every rule against password, in configured order, and
// aggregates all failures. There is no fail-fast: a failing rule never
// stops the rules after it. A validator with no rules returns a valid
// result for any input, including the empty string.
func (v *Validator) Validate(password string) ValidationResult {
	var errs []*PasswordError
	for _, rule := range v.rules {
		err := rule.Validate(password)
		if err == nil {
			continue
		}
		var perr *PasswordError
		if !errors.As(err, &perr) {
			// Rules are expected to fail with a PasswordError. Anything
			// else still must reach the caller, so carry its message.
			perr = CustomError(err.Error())
		}
		errs = append(errs, perr)
	}
	if len(errs) == 0 {
		return success()
	}
	return failure(errs)
}

// Schema returns an OpenAPI schema describing the configured password
// policy. Every rule implementing [Describer] contributes, in configured
// order; other rules are skipped.
func (v *Validator) Schema() (*openapi3.Schema, error) {
	schema := openapi3.NewStringSchema()
	schema.Format = "password"
	for _, rule := range v.rules {
		d, ok := rule.(Describer)
		if !ok {
			continue
		}
		if err := d.Describe(schema); err != nil {
			return nil, err
		}
	}
	return schema, nil
}
