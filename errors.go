package passwordvalidation

// Kind identifies the validation failure a [PasswordError] reports.
// The built-in kinds form a closed set; rules added by callers report
// [KindCustom] with their own message.
type Kind int

const (
	// KindTooShort reports a password below the configured minimum length.
	KindTooShort Kind = iota + 1
	// KindMissingUppercase reports a password without an uppercase letter.
	KindMissingUppercase
	// KindMissingDigit reports a password without a decimal digit.
	KindMissingDigit
	// KindMissingSpecialChar reports a password without a special character.
	KindMissingSpecialChar
	// KindCustom reports a failure from a caller-supplied rule.
	KindCustom
)

// PasswordError is a single validation failure. Built-in failures are the
// package-level Err vars; caller-supplied rules produce them via
// [CustomError]. A PasswordError is immutable once constructed.
type PasswordError struct {
	kind    Kind
	message string
}

// Built-in validation failures. Rules return these directly, so callers
// may compare against them with errors.Is or plain equality.
var (
	// ErrTooShort carries a fixed description that does not reflect a
	// custom minimum length; callers are known to match on the exact text.
	ErrTooShort           = &PasswordError{kind: KindTooShort}
	ErrMissingUppercase   = &PasswordError{kind: KindMissingUppercase}
	ErrMissingDigit       = &PasswordError{kind: KindMissingDigit}
	ErrMissingSpecialChar = &PasswordError{kind: KindMissingSpecialChar}
)

// CustomError returns a [KindCustom] validation failure whose description
// is message, verbatim.
func CustomError(message string) *PasswordError {
	return &PasswordError{kind: KindCustom, message: message}
}

// Kind returns the failure kind.
func (e *PasswordError) Kind() Kind {
	return e.kind
}

// Description returns the human-readable description of the failure.
// The built-in kinds map to fixed strings; [KindCustom] returns the
// message passed to [CustomError] unchanged.
func (e *PasswordError) Description() string {
	switch e.kind {
	case KindTooShort:
		return "Password must be at least 8 characters long"
	case KindMissingUppercase:
		return "Password must include an uppercase letter"
	case KindMissingDigit:
		return "Password must include a number"
	case KindMissingSpecialChar:
		return "Password must include a special character"
	default:
		return e.message
	}
}

// Error implements the error interface.
func (e *PasswordError) Error() string {
	return e.Description()
}
