package validator

import (
	"regexp"
	"slices"

	"github.com/dmitrymomot/reactform/pkg/rules"
)

// Rule pairs a validator with the message reported when it fails.
// An empty Msg falls back to the engine's default message.
type Rule struct {
	Validator Validator
	Msg       string
}

// Required marks a field as required.
func Required(msg string) Rule {
	return Rule{Validator: Named(RequiredRule), Msg: msg}
}

// Use refers to a registered rule, the required keyword or a length spec by name.
func Use(name, msg string) Rule {
	return Rule{Validator: Named(name), Msg: msg}
}

// Len checks the value length against a "min:<n> max:<n>" spec.
func Len(spec, msg string) Rule {
	return Rule{Validator: LengthSpec(spec), Msg: msg}
}

// Match checks the string form of the value against re.
func Match(re *regexp.Regexp, msg string) Rule {
	return Rule{Validator: Pattern(re), Msg: msg}
}

// Check runs a custom predicate.
func Check(fn rules.Predicate, msg string) Rule {
	return Rule{Validator: Func(fn), Msg: msg}
}

// Config maps field names to their ordered rules.
type Config map[string][]Rule

// Add appends rules to a field.
func (c Config) Add(field string, rs ...Rule) Config {
	c[field] = append(c[field], rs...)
	return c
}

// Clone returns a copy whose rule slices are independent of the original.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for field, rs := range c {
		out[field] = slices.Clone(rs)
	}
	return out
}
