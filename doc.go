// Package passwordvalidation validates password strings against a
// configurable set of composable rules.
//
// Build a validator once with [Builder] and reuse it for every password:
//
//	v := passwordvalidation.NewBuilder().
//	    MinLength(12).
//	    RequireUppercase().
//	    RequireDigit().
//	    RequireSpecialCharacter().
//	    Build()
//
//	result := v.Validate("hunter2")
//	if !result.IsValid() {
//	    for _, e := range result.Errors() {
//	        fmt.Println(e.Description())
//	    }
//	}
//
// Every rule always runs; the result aggregates all failures in rule
// order rather than stopping at the first one. [DefaultRules] returns the
// canonical configuration (8+ characters, uppercase, digit, special
// character).
//
// Extend the rule set by implementing [Rule] (or wrapping a function with
// [Custom]) and registering it via [Builder.AddRule].
//
// Rules that also implement [Describer] contribute to the OpenAPI schema
// returned by [Validator.Schema], which documents the configured policy
// for API consumers.
package passwordvalidation
