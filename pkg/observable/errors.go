package observable

import "errors"

var (
	// ErrEmptyKey is returned when defining a field without a key.
	ErrEmptyKey = errors.New("field key cannot be empty")

	// ErrDuplicateKey is returned when defining a field that already exists.
	ErrDuplicateKey = errors.New("field already defined")

	// ErrUnknownKey is returned when writing a field that does not exist.
	ErrUnknownKey = errors.New("unknown field")
)
