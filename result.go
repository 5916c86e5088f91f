package passwordvalidation

// ValidationResult is the aggregate outcome of running all of a
// validator's rules against one password. It is valid exactly when no
// rule failed.
type ValidationResult struct {
	errors []*PasswordError
}

func success() ValidationResult {
	return ValidationResult{}
}

func failure(errors []*PasswordError) ValidationResult {
	return ValidationResult{errors: errors}
}

// IsValid reports whether every rule passed.
func (r ValidationResult) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns every failure in rule-configuration order. Callers must
// not modify the returned slice.
func (r ValidationResult) Errors() []*PasswordError {
	return r.errors
}

// Descriptions returns the description of every failure, in the same
// order as [ValidationResult.Errors].
func (r ValidationResult) Descriptions() []string {
	if len(r.errors) == 0 {
		return nil
	}
	descs := make([]string, len(r.errors))
	for i, e := range r.errors {
		descs[i] = e.Description()
	}
	return descs
}
