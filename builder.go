package passwordvalidation

// Builder assembles a [Validator] from a sequence of rules. Every
// configuration method appends one rule and returns the builder for
// chaining; Build is terminal. Rules can only be appended, never removed
// or reordered. A Builder is a short-lived, single-owner object and is
// not safe for concurrent use.
type Builder struct {
	rules []Rule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MinLength appends a [MinLength] rule with the given minimum.
func (b *Builder) MinLength(min int) *Builder {
	return b.AddRule(MinLength(min))
}

// RequireMinLength appends a [MinLength] rule with [DefaultMinLength].
func (b *Builder) RequireMinLength() *Builder {
	return b.AddRule(MinLength(DefaultMinLength))
}

// RequireUppercase appends a [HasUppercase] rule.
func (b *Builder) RequireUppercase() *Builder {
	return b.AddRule(HasUppercase())
}

// RequireLowercase appends a [HasLowercase] rule.
func (b *Builder) RequireLowercase() *Builder {
	return b.AddRule(HasLowercase())
}

// RequireDigit appends a [HasDigit] rule.
func (b *Builder) RequireDigit() *Builder {
	return b.AddRule(HasDigit())
}

// RequireSpecialCharacter appends a [HasSpecialCharacter] rule. With no
// arguments the rule uses [DefaultSpecialCharacters].
func (b *Builder) RequireSpecialCharacter(chars ...string) *Builder {
	return b.AddRule(HasSpecialCharacter(chars...))
}

// NoWhitespace appends a [NoWhitespace] rule.
func (b *Builder) NoWhitespace() *Builder {
	return b.AddRule(NoWhitespace())
}

// AddRule appends an arbitrary rule.
func (b *Builder) AddRule(rule Rule) *Builder {
	b.rules = append(b.rules, rule)
	return b
}

// Build returns a [Validator] owning a snapshot of the accumulated rules
// in insertion order. The builder may keep being used afterward without
// affecting validators already built.
func (b *Builder) Build() *Validator {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return &Validator{rules: rules}
}

// DefaultRules returns a validator with the canonical configuration:
// at least [DefaultMinLength] characters, an uppercase letter, a digit,
// and a special character from [DefaultSpecialCharacters].
func DefaultRules() *Validator {
	return NewBuilder().
		MinLength(DefaultMinLength).
		RequireUppercase().
		RequireDigit().
		RequireSpecialCharacter().
		Build()
}
