package passwordvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    func(string) error
	desc string
}

// Custom returns a validation rule that uses f for validation and desc for
// documentation. Failures from f surface as [KindCustom] errors carrying
// the message f produced.
func Custom(f func(password string) error, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Validate(password string) error {
	return r.f(password)
}

func (r custom) Describe(schema *openapi3.Schema) error {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += r.desc
	return nil
}
