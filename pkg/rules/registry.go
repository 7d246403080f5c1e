package rules

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sync"
)

// Predicate reports whether a value satisfies a rule.
type Predicate func(value any) bool

// Registry stores named rules. The zero value is not usable; create one with
// New or NewDefault.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Predicate
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{rules: make(map[string]Predicate)}
}

// NewDefault creates a registry preloaded with the built-in rules.
func NewDefault() *Registry {
	r := New()
	for name, fn := range builtins() {
		r.rules[name] = fn
	}
	return r
}

// RegisterFunc registers a predicate under name, replacing any rule already
// registered with that name.
func (r *Registry) RegisterFunc(name string, fn Predicate) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilPredicate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = fn
	return nil
}

// RegisterRegex registers a rule that matches the string form of a value
// against re.
func (r *Registry) RegisterRegex(name string, re *regexp.Regexp) error {
	if re == nil {
		return ErrNilPattern
	}
	return r.RegisterFunc(name, MatchPredicate(re))
}

// RegisterPattern compiles expr and registers it as a regular-expression rule.
func (r *Registry) RegisterPattern(name, expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return errors.Join(ErrInvalidPattern, fmt.Errorf("rule %q: %w", name, err))
	}
	return r.RegisterRegex(name, re)
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.rules[name]
	return fn, ok
}

// Has reports whether a rule is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{rules: make(map[string]Predicate, len(r.rules))}
	for name, fn := range r.rules {
		c.rules[name] = fn
	}
	return c
}

// MatchPredicate builds a predicate that tests the string form of a value
// against re.
func MatchPredicate(re *regexp.Regexp) Predicate {
	return func(value any) bool {
		return re.MatchString(Stringify(value))
	}
}

// Stringify returns the string form used when a rule inspects text.
// Nil becomes the empty string; other non-string values use fmt.Sprint.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
