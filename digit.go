package passwordvalidation

import "unicode"

// HasDigit returns a validation rule that checks if a password contains
// at least one decimal digit. Unicode decimal digits outside ASCII count;
// number-like characters such as Roman numerals do not.
func HasDigit() Rule {
	return newStringRule(containsDigit, ErrMissingDigit,
		"Must include a number.")
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
