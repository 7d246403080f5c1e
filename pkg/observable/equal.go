package observable

import (
	"math"
	"reflect"
)

// Same reports whether writing b over a is a no-op: both nil, both NaN, or
// equal comparable values of the same type. Values of non-comparable types
// (slices, maps, funcs) are never the same, like distinct object references.
func Same(a, b any) (same bool) {
	if isNaN(a) && isNaN(b) {
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	// Structs and arrays holding interfaces can still panic on ==.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	case nil:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}
