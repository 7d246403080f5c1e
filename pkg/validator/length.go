package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/reactform/pkg/rules"
)

// At most two clauses, either order, separated by a single space.
var lengthSpecRegex = regexp.MustCompile(`^m(in|ax):(\d+)(?: m(in|ax):(\d+))?$`)

type lengthBounds struct {
	min, max       int
	hasMin, hasMax bool
}

// looksLikeLengthSpec reports whether a rule name was meant as a length spec.
func looksLikeLengthSpec(name string) bool {
	return strings.HasPrefix(name, "min:") || strings.HasPrefix(name, "max:")
}

func parseLengthSpec(spec string) (lengthBounds, error) {
	m := lengthSpecRegex.FindStringSubmatch(spec)
	if m == nil {
		return lengthBounds{}, &MalformedRuleSyntaxError{
			Rule:   spec,
			Reason: `expected "min:<n>", "max:<n>" or both separated by a single space`,
		}
	}

	var b lengthBounds
	clauses := [][2]string{{m[1], m[2]}}
	if m[3] != "" {
		clauses = append(clauses, [2]string{m[3], m[4]})
	}

	for _, c := range clauses {
		n, err := strconv.Atoi(c[1])
		if err != nil {
			return lengthBounds{}, &MalformedRuleSyntaxError{Rule: spec, Reason: "bound is out of range"}
		}
		switch c[0] {
		case "in":
			if b.hasMin {
				return lengthBounds{}, &MalformedRuleSyntaxError{Rule: spec, Reason: "min is declared twice"}
			}
			b.min, b.hasMin = n, true
		case "ax":
			if b.hasMax {
				return lengthBounds{}, &MalformedRuleSyntaxError{Rule: spec, Reason: "max is declared twice"}
			}
			b.max, b.hasMax = n, true
		}
	}

	if b.hasMin && b.hasMax && b.min > b.max {
		return lengthBounds{}, &InvalidRangeError{Spec: spec, Min: b.min, Max: b.max}
	}
	return b, nil
}

func lengthPredicate(spec string) (rules.Predicate, error) {
	b, err := parseLengthSpec(spec)
	if err != nil {
		return nil, err
	}
	return b.check, nil
}

// check passes values without a length, such as numbers and bools, since
// there is nothing to bound. Nil fails.
func (b lengthBounds) check(value any) bool {
	n, ok := lengthOf(value)
	if !ok {
		return value != nil
	}
	if b.hasMin && n < b.min {
		return false
	}
	if b.hasMax && n > b.max {
		return false
	}
	return true
}

// lengthOf counts NFC-normalised runes for strings and elements for slices,
// arrays and maps.
func lengthOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return runeCount(s), true
	}
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return runeCount(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func runeCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
