package validator

import (
	"sync"

	"github.com/dmitrymomot/reactform/pkg/rules"
)

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine()
})

// Resolve turns a descriptor into a predicate using the default registry.
func Resolve(v Validator) (rules.Predicate, error) {
	return defaultEngine().Resolve(v)
}

// VerifySingle validates one value using the default registry.
func VerifySingle(name string, value any, rs ...Rule) (Result, error) {
	return defaultEngine().Validate(name, value, rs...)
}

// VerifyAll validates every field of data using the default registry.
func VerifyAll(data Source, cfg Config) (Results, error) {
	return defaultEngine().ValidateAll(data, cfg)
}
