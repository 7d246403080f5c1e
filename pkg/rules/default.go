package rules

import (
	"regexp"
	"sync"
)

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry preloaded with built-in rules.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewDefault()
	})
	return defaultRegistry
}

// RegisterFunc registers a predicate on the default registry.
func RegisterFunc(name string, fn Predicate) error {
	return Default().RegisterFunc(name, fn)
}

// RegisterRegex registers a regular-expression rule on the default registry.
func RegisterRegex(name string, re *regexp.Regexp) error {
	return Default().RegisterRegex(name, re)
}

// RegisterPattern compiles expr and registers it on the default registry.
func RegisterPattern(name, expr string) error {
	return Default().RegisterPattern(name, expr)
}
