package rules

import "errors"

var (
	// ErrEmptyName is returned when registering a rule without a name.
	ErrEmptyName = errors.New("rule name cannot be empty")

	// ErrNilPredicate is returned when registering a nil predicate.
	ErrNilPredicate = errors.New("rule predicate cannot be nil")

	// ErrNilPattern is returned when registering a nil regular expression.
	ErrNilPattern = errors.New("rule pattern cannot be nil")

	// ErrInvalidPattern is returned when a pattern fails to compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")
)
