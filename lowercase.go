package passwordvalidation

import "unicode"

var errMissingLowercase = CustomError("Password must include a lowercase letter")

// HasLowercase returns a validation rule that checks if a password
// contains at least one lowercase letter. The rule is not part of the
// built-in failure kinds; it fails as [KindCustom].
func HasLowercase() Rule {
	return newStringRule(containsLowercase, errMissingLowercase,
		"Must include a lowercase letter.")
}

func containsLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
