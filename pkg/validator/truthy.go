package validator

import (
	"math"
	"reflect"
)

// Truthy reports whether a value counts as present. Nil, false, zero numbers,
// NaN, the empty string and nil pointers, slices, maps and interfaces are
// falsy. Non-nil empty slices and maps are truthy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	default:
		return !rv.IsZero()
	}
}

func isEmptyString(value any) bool {
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.String && rv.Len() == 0
}
