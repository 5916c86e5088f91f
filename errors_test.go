package passwordvalidation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordErrorDescriptions(t *testing.T) {
	tests := []struct {
		name string
		err  *PasswordError
		desc string
	}{
		{name: "too short", err: ErrTooShort, desc: "Password must be at least 8 characters long"},
		{name: "missing uppercase", err: ErrMissingUppercase, desc: "Password must include an uppercase letter"},
		{name: "missing digit", err: ErrMissingDigit, desc: "Password must include a number"},
		{name: "missing special char", err: ErrMissingSpecialChar, desc: "Password must include a special character"},
		{name: "custom", err: CustomError("no famous passwords"), desc: "no famous passwords"},
		{name: "custom empty message", err: CustomError(""), desc: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.desc, tt.err.Description())
			assert.Equal(t, tt.desc, tt.err.Error())
		})
	}
}

func TestPasswordErrorKinds(t *testing.T) {
	require.Equal(t, KindTooShort, ErrTooShort.Kind())
	require.Equal(t, KindMissingUppercase, ErrMissingUppercase.Kind())
	require.Equal(t, KindMissingDigit, ErrMissingDigit.Kind())
	require.Equal(t, KindMissingSpecialChar, ErrMissingSpecialChar.Kind())
	require.Equal(t, KindCustom, CustomError("x").Kind())
}

func TestPasswordErrorIs(t *testing.T) {
	// The built-in failures are singletons, so errors.Is works through wrapping.
	require.ErrorIs(t, ErrTooShort, ErrTooShort)
	require.NotErrorIs(t, ErrTooShort, ErrMissingDigit)

	var perr *PasswordError
	require.True(t, errors.As(error(ErrMissingUppercase), &perr))
	require.Equal(t, KindMissingUppercase, perr.Kind())
}
