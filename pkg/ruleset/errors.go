package ruleset

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrAmbiguousRule   = errors.New("rule sets both validator and pattern")
	ErrEmptyRule       = errors.New("rule sets neither validator nor pattern")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrNotMapping      = errors.New("data document must be a mapping")
)
