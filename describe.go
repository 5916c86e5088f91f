package passwordvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type describe struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the
// schema description. It never fails validation.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Validate(_ string) error {
	return nil
}

func (r *describe) Describe(schema *openapi3.Schema) error {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += r.desc
	return nil
}
