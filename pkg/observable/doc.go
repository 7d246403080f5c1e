// Package observable provides explicit observable values: a Field holds a
// value, suppresses no-op writes and notifies registered listeners after
// every effective write. An Object is an ordered, fixed set of named fields
// that stands in for a plain data record whose writes need to be observed.
//
// # Write semantics
//
// Set compares the incoming value with the current one (read through the
// field's getter when one is installed). Equal values are ignored, and NaN
// written over NaN counts as equal. Otherwise the value is stored (through the
// setter when one is installed) and every listener is called in registration
// order with the previous and current values. Listener errors are joined and
// returned from Set; all listeners run regardless.
//
// Writes to a single field are serialised, so listeners observe writes in the
// order they were applied. A listener must not write the field it observes.
//
// # Usage
//
//	data := observable.NewObject(
//	    observable.Entry{Key: "name", Value: ""},
//	    observable.Entry{Key: "age", Value: 0},
//	)
//	observable.Bind(data, "name", func(prev, next any) error {
//	    fmt.Println("name changed from", prev, "to", next)
//	    return nil
//	})
//	_ = data.Set("name", "Alice") // listener runs
//	_ = data.Set("name", "Alice") // no-op
//
// Sealed fields cannot be observed: Bind returns false and writes go through
// without notification.
package observable
