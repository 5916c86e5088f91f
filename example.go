package passwordvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type example struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example
// value. It never fails validation.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Validate(_ string) error {
	return nil
}

func (r *example) Describe(schema *openapi3.Schema) error {
	schema.Example = r.ex
	return nil
}
