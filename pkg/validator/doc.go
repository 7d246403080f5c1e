// Package validator resolves declarative rule descriptors into predicates and
// runs them against field values.
//
// A rule descriptor is a Validator, one of four closed forms:
//
//   - Named: a rule name looked up in a Registry. Names that are not
//     registered fall back to the "required" keyword and then to the length
//     spec grammar ("min:2", "max:10", "min:2 max:10").
//   - LengthSpec: an explicit length spec that skips the registry.
//   - Pattern: a regular expression tested against the string form of a value.
//   - Func: a caller supplied predicate.
//
// Descriptors are paired with a failure message in a Rule, and fields are
// mapped to ordered rule lists in a Config.
//
// # Usage
//
//	cfg := validator.Config{
//	    "name":  {validator.Required("name is required"), validator.Len("min:2 max:20", "")},
//	    "email": {validator.Use("email", "invalid email")},
//	}
//
//	res, err := validator.VerifySingle("name", "", cfg["name"]...)
//	// res.Valid == false, res.Msg == "name is required"
//
//	all, err := validator.VerifyAll(validator.FromMap(data), cfg)
//	if bad, ok := all.FirstInvalid(); ok {
//	    // report bad.Name / bad.Msg
//	}
//
// # Semantics
//
// Rules run in declared order and the first failing rule wins. A field whose
// rules do not include "required" and whose value is the empty string is
// always valid and no rule is evaluated. Resolution happens on every
// evaluation and nothing is cached.
//
// # Error Handling
//
// Bad rule configuration surfaces as an error when the offending rule is
// first evaluated: UnknownRuleError, InvalidValidatorTypeError,
// InvalidRangeError and MalformedRuleSyntaxError. Each unwraps to a sentinel
// (ErrUnknownRule, ...), so both errors.Is and errors.As work. Failed
// validation is not an error; it is reported through Result. Results.Errors
// converts failures into ValidationErrors for callers that prefer an error
// return.
//
// The package-level Resolve, VerifySingle and VerifyAll use an engine bound
// to rules.Default. Create an Engine with WithRegistry for isolated rule sets.
package validator
