package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned when a rule name is neither registered nor a
	// built-in keyword or length spec.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidValidatorType is returned when a descriptor is not a rule name,
	// length spec, regular expression or predicate.
	ErrInvalidValidatorType = errors.New("invalid validator type")

	// ErrInvalidRange is returned when a length spec has min greater than max.
	ErrInvalidRange = errors.New("invalid length range")

	// ErrMalformedRuleSyntax is returned when a length spec does not follow the
	// min:<n> [max:<n>] grammar.
	ErrMalformedRuleSyntax = errors.New("malformed rule syntax")
)

// UnknownRuleError names the rule that could not be resolved.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q: register it before use", e.Name)
}

func (e *UnknownRuleError) Unwrap() error { return ErrUnknownRule }

// InvalidValidatorTypeError carries the offending descriptor value.
type InvalidValidatorTypeError struct {
	Value any
}

func (e *InvalidValidatorTypeError) Error() string {
	if e.Value == nil {
		return "invalid validator: must be a rule name, regular expression or predicate"
	}
	return fmt.Sprintf("invalid validator type %T: must be a rule name, regular expression or predicate", e.Value)
}

func (e *InvalidValidatorTypeError) Unwrap() error { return ErrInvalidValidatorType }

// InvalidRangeError indicates a length spec whose lower bound exceeds its upper bound.
type InvalidRangeError struct {
	Spec string
	Min  int
	Max  int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid length range %q: min %d is greater than max %d", e.Spec, e.Min, e.Max)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// MalformedRuleSyntaxError indicates a length spec that fails the grammar.
type MalformedRuleSyntaxError struct {
	Rule   string
	Reason string
}

func (e *MalformedRuleSyntaxError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", e.Rule, e.Reason)
}

func (e *MalformedRuleSyntaxError) Unwrap() error { return ErrMalformedRuleSyntax }

func IsUnknownRuleError(err error) bool {
	var e *UnknownRuleError
	return errors.As(err, &e)
}

func IsInvalidValidatorTypeError(err error) bool {
	var e *InvalidValidatorTypeError
	return errors.As(err, &e)
}

func IsInvalidRangeError(err error) bool {
	var e *InvalidRangeError
	return errors.As(err, &e)
}

func IsMalformedRuleSyntaxError(err error) bool {
	var e *MalformedRuleSyntaxError
	return errors.As(err, &e)
}
