package validator

import (
	"regexp"

	"github.com/dmitrymomot/reactform/pkg/rules"
)

// RequiredRule is the keyword that marks a field as required.
const RequiredRule = "required"

// Kind identifies which form a Validator descriptor takes.
type Kind uint8

const (
	// KindInvalid is the zero Validator. Resolving it fails with
	// InvalidValidatorTypeError.
	KindInvalid Kind = iota
	// KindName refers to a registered rule, the required keyword or a length spec.
	KindName
	// KindLength is an explicit min:<n> [max:<n>] length spec.
	KindLength
	// KindPattern matches the string form of the value against a regular expression.
	KindPattern
	// KindFunc is a caller-supplied predicate.
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindLength:
		return "length"
	case KindPattern:
		return "pattern"
	case KindFunc:
		return "func"
	default:
		return "invalid"
	}
}

// Validator describes a single check. Build one with Named, LengthSpec,
// Pattern or Func; the zero value does not resolve.
type Validator struct {
	kind    Kind
	name    string
	pattern *regexp.Regexp
	fn      rules.Predicate
}

// Named refers to a rule by name. At resolution the registry is consulted
// first, then the required keyword, then the length spec grammar.
func Named(name string) Validator {
	return Validator{kind: KindName, name: name}
}

// LengthSpec builds a length check from a "min:<n> max:<n>" spec without
// consulting the registry. The spec is parsed when the validator is resolved.
func LengthSpec(spec string) Validator {
	return Validator{kind: KindLength, name: spec}
}

// Pattern matches the string form of a value against re. A nil re yields
// the zero Validator.
func Pattern(re *regexp.Regexp) Validator {
	if re == nil {
		return Validator{}
	}
	return Validator{kind: KindPattern, pattern: re}
}

// Func wraps a predicate. A nil fn yields the zero Validator.
func Func(fn rules.Predicate) Validator {
	if fn == nil {
		return Validator{}
	}
	return Validator{kind: KindFunc, fn: fn}
}

// Parse converts a dynamically typed descriptor into a Validator.
// Strings become Named, regular expressions (pointer or value) become Pattern and predicates
// become Func. Anything else fails with InvalidValidatorTypeError.
func Parse(v any) (Validator, error) {
	switch x := v.(type) {
	case Validator:
		if x.IsZero() {
			return Validator{}, &InvalidValidatorTypeError{Value: v}
		}
		return x, nil
	case string:
		return Named(x), nil
	case *regexp.Regexp:
		if x != nil {
			return Pattern(x), nil
		}
	case regexp.Regexp:
		return Pattern(&x), nil
	case rules.Predicate:
		if x != nil {
			return Func(x), nil
		}
	case func(any) bool:
		if x != nil {
			return Func(x), nil
		}
	}
	return Validator{}, &InvalidValidatorTypeError{Value: v}
}

// MustParse is like Parse but panics on error.
func MustParse(v any) Validator {
	val, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return val
}

func (v Validator) Kind() Kind { return v.kind }

func (v Validator) IsZero() bool { return v.kind == KindInvalid }

// IsRequired reports whether the descriptor is the required keyword.
func (v Validator) IsRequired() bool {
	return v.kind == KindName && v.name == RequiredRule
}

// Name returns the rule name or length spec; empty for other kinds.
func (v Validator) Name() string {
	if v.kind == KindName || v.kind == KindLength {
		return v.name
	}
	return ""
}

// Regexp returns the pattern of a KindPattern validator.
func (v Validator) Regexp() *regexp.Regexp { return v.pattern }

func (v Validator) String() string {
	switch v.kind {
	case KindName, KindLength:
		return v.name
	case KindPattern:
		return "/" + v.pattern.String() + "/"
	case KindFunc:
		return "func"
	default:
		return ""
	}
}

// MarshalText encodes the descriptor as its String form.
func (v Validator) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
