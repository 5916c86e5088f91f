package passwordvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// stringRule is the shared base for the character-class rules. It wraps an
// ozzo string rule built from a predicate and maps any failure to a single
// fixed PasswordError. Ozzo skips empty values (it leaves those to its
// Required rule), so the empty password is rejected before delegating.
type stringRule struct {
	validation.StringRule
	failure *PasswordError
	desc    string
}

func newStringRule(validator func(string) bool, failure *PasswordError, desc string) stringRule {
	return stringRule{
		StringRule: validation.NewStringRule(validator, failure.Description()),
		failure:    failure,
		desc:       desc,
	}
}

func (r stringRule) Validate(password string) error {
	if password == "" {
		return r.failure
	}
	if err := r.StringRule.Validate(password); err != nil {
		return r.failure
	}
	return nil
}

func (r stringRule) Describe(schema *openapi3.Schema) error {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += r.desc
	return nil
}
