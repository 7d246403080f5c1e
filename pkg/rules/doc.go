// Package rules provides the named-rule registry consulted when a rule
// descriptor refers to a validator by name.
//
// A Registry maps rule names to Predicate functions. It ships with a set of
// built-in format rules (email, url, phone, uuid, slug, ...) and can be
// extended at runtime with custom predicates or regular expressions.
//
// # Usage
//
//	reg := rules.NewDefault()
//	_ = reg.RegisterPattern("zip", `^\d{5}$`)
//	_ = reg.RegisterFunc("even", func(v any) bool {
//	    n, ok := v.(int)
//	    return ok && n%2 == 0
//	})
//
//	if check, ok := reg.Lookup("zip"); ok {
//	    check("12345") // true
//	}
//
// # Default registry
//
// Default returns a lazily built, process-wide registry preloaded with the
// built-in rules. The package-level RegisterFunc, RegisterRegex and
// RegisterPattern helpers extend it. Code that needs isolation (tests, multi
// tenant setups) should create its own Registry with New or NewDefault and
// pass it explicitly.
//
// All Registry methods are safe for concurrent use.
package rules
