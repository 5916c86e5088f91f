package passwordvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSpecialCharacterDefaultSet(t *testing.T) {
	r := HasSpecialCharacter()
	assert.NoError(t, r.Validate("Password1!"))
	assert.NoError(t, r.Validate("pass`word"))
	assert.ErrorIs(t, r.Validate("Password1"), ErrMissingSpecialChar)
	assert.ErrorIs(t, r.Validate(""), ErrMissingSpecialChar)
}

func TestHasSpecialCharacterCustomSet(t *testing.T) {
	r := HasSpecialCharacter("!@#")
	assert.NoError(t, r.Validate("Password1!"))
	// $ is special in the default set but not in this one.
	assert.ErrorIs(t, r.Validate("Password1$"), ErrMissingSpecialChar)
}

func TestHasSpecialCharacterMultipleSets(t *testing.T) {
	// Multiple arguments are concatenated into one set.
	r := HasSpecialCharacter("!@", "#")
	assert.NoError(t, r.Validate("pw#"))
	assert.ErrorIs(t, r.Validate("pw$"), ErrMissingSpecialChar)
}

func TestHasSpecialCharacterEmptySet(t *testing.T) {
	// An explicitly empty set can never be satisfied.
	r := HasSpecialCharacter("")
	assert.ErrorIs(t, r.Validate("any!thing"), ErrMissingSpecialChar)
}
