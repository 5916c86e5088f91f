package passwordvalidation

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

var errHasWhitespace = CustomError("Password must not contain whitespace")

type noWhitespaceRule struct{}

// NoWhitespace returns a validation rule that rejects passwords containing
// whitespace characters. The rule is not part of the built-in failure
// kinds; it fails as [KindCustom].
func NoWhitespace() Rule {
	return noWhitespaceRule{}
}

func (noWhitespaceRule) Validate(password string) error {
	if govalidator.HasWhitespace(password) {
		return errHasWhitespace
	}
	return nil
}

func (noWhitespaceRule) Describe(schema *openapi3.Schema) error {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += "Must not contain whitespace."
	return nil
}
