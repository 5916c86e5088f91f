package passwordvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all password validation rules implement.
	// Validate returns nil when the password satisfies the rule, or an
	// error describing the failure. Built-in rules return a
	// [*PasswordError]; any other error type is surfaced to callers as a
	// [KindCustom] error carrying its message.
	Rule interface {
		Validate(password string) error
	}

	// RuleFunc adapts a plain function to the [Rule] interface.
	RuleFunc func(password string) error

	// Describer is implemented by rules that can document themselves on an
	// OpenAPI schema. Rules without it still validate; they just leave the
	// schema returned by [Validator.Schema] untouched.
	Describer interface {
		Describe(schema *openapi3.Schema) error
	}
)

// Validate calls f(password).
func (f RuleFunc) Validate(password string) error {
	return f(password)
}
