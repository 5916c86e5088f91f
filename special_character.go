package passwordvalidation

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// DefaultSpecialCharacters is the special character set used when
// [HasSpecialCharacter] is called without arguments.
const DefaultSpecialCharacters = "!@#$%^&*(),.?\":{}|<>-_+=[]\\;'`~"

type specialCharacterRule struct {
	stringRule
	chars string
}

// HasSpecialCharacter returns a validation rule that checks if a password
// contains at least one character from the given set, or from
// [DefaultSpecialCharacters] when no set is given. Multiple arguments are
// concatenated into a single set. Membership is an exact character match;
// an explicitly empty set can never be satisfied.
func HasSpecialCharacter(chars ...string) Rule {
	set := DefaultSpecialCharacters
	if len(chars) > 0 {
		set = strings.Join(chars, "")
	}
	return specialCharacterRule{
		stringRule: newStringRule(func(s string) bool {
			return strings.ContainsAny(s, set)
		}, ErrMissingSpecialChar, ""),
		chars: set,
	}
}

func (r specialCharacterRule) Describe(schema *openapi3.Schema) error {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += fmt.Sprintf("Must include a special character from %q.", r.chars)
	return nil
}
