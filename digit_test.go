package passwordvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDigit(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{name: "ascii digit", password: "abc1", ok: true},
		{name: "no digit", password: "abcdef", ok: false},
		{name: "arabic-indic digits", password: "abc١٢٣", ok: true},
		{name: "roman numeral is not a digit", password: "abcⅧ", ok: false},
		{name: "empty", password: "", ok: false},
	}
	r := HasDigit()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMissingDigit)
			}
		})
	}
}
