// Package reactform keeps validation results for a data object up to date as
// its fields are written.
//
// A Form binds to an observable.Object and a validator.Config mapping field
// names to ordered rules. Every effective write to a tracked field re-runs the
// field's rules synchronously and merges the outcome into a stored result.
// Results are read without recomputation:
//
//	data := observable.NewObject(
//	    observable.Entry{Key: "name", Value: ""},
//	    observable.Entry{Key: "email", Value: ""},
//	)
//	form := reactform.New(data, validator.Config{
//	    "name":  {validator.Required("name is required"), validator.Len("min:2 max:20", "2 to 20 characters")},
//	    "email": {validator.Use("email", "invalid email")},
//	})
//
//	_ = form.Set("name", "A")
//	form.IsError("name")   // false: the field was touched and fails min:2
//	form.IsError("email")  // true: untouched fields never report errors
//
//	res, err := form.VerifyAll() // fresh evaluation of every field
//
// # Dirty state
//
// A field becomes dirty the first time it is written with a truthy value and
// stays dirty afterwards. IsError returns true for fields that are not dirty,
// so freshly loaded forms do not show errors before the user has typed.
// VerifyAll and Validate ignore dirty state.
//
// # Rule resolution
//
// Rule names resolve against a rules.Registry (rules.Default unless
// WithRegistry is given), then the "required" keyword, then the length
// grammar "min:<n>", "max:<n>" or both separated by one space. Unknown names
// are reported as validator.UnknownRuleError when the rule is first evaluated:
// from Set for writes, from VerifyAll and Validate for whole-form checks.
package reactform
