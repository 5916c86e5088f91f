package passwordvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasUppercase(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{name: "ascii uppercase", password: "Password", ok: true},
		{name: "no uppercase", password: "password", ok: false},
		{name: "cyrillic uppercase", password: "пАроль", ok: true},
		{name: "non-latin lowercase only", password: "ärger1!", ok: false},
		{name: "digits only", password: "1234", ok: false},
		{name: "empty", password: "", ok: false},
	}
	r := HasUppercase()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMissingUppercase)
			}
		})
	}
}
