package passwordvalidation

import "unicode"

// HasUppercase returns a validation rule that checks if a password
// contains at least one uppercase letter. Classification is
// Unicode-aware, so non-Latin uppercase letters count.
func HasUppercase() Rule {
	return newStringRule(containsUppercase, ErrMissingUppercase,
		"Must include an uppercase letter.")
}

func containsUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
