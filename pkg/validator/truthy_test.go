package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reactform/pkg/validator"
)

func TestTruthy(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	one := 1

	falsy := []any{nil, false, "", 0, int8(0), uint(0), 0.0, float32(0), math.NaN(), float32(math.NaN()), nilPtr, nilMap, []string(nil), struct{}{}}
	truthy := []any{true, "0", " ", 1, -1, 0.1, math.Inf(-1), &one, []string{}, map[string]int{}, struct{ A int }{1}}

	for _, v := range falsy {
		assert.False(t, validator.Truthy(v), "expected %#v to be falsy", v)
	}
	for _, v := range truthy {
		assert.True(t, validator.Truthy(v), "expected %#v to be truthy", v)
	}

	t.Run("named numeric NaN is falsy", func(t *testing.T) {
		type score float64
		assert.False(t, validator.Truthy(score(math.NaN())))
		assert.True(t, validator.Truthy(score(2)))
	})
}

func TestDefaultEngine(t *testing.T) {
	t.Run("resolve uses default registry", func(t *testing.T) {
		check, err := validator.Resolve(validator.Named("email"))
		if assert.NoError(t, err) {
			assert.True(t, check("user@example.com"))
		}
	})

	t.Run("verify single", func(t *testing.T) {
		res, err := validator.VerifySingle("x", "", validator.Use("min:3", ""))
		assert.NoError(t, err)
		assert.True(t, res.Valid)

		res, err = validator.VerifySingle("x", "", validator.Use("min:3", ""), validator.Required(""))
		assert.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("verify all scenario", func(t *testing.T) {
		results, err := validator.VerifyAll(
			validator.FromMap(map[string]any{"name": ""}),
			validator.Config{"name": {validator.Required("required!")}},
		)
		assert.NoError(t, err)

		bad, ok := results.FirstInvalid()
		assert.True(t, ok)
		assert.Equal(t, validator.Result{
			Name:      "name",
			Valid:     false,
			Msg:       "required!",
			Validator: validator.Named("required"),
		}, bad)
	})
}

func TestEntries(t *testing.T) {
	entries := validator.FromMap(map[string]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, entries.Keys())
	assert.Equal(t, 2, entries.Get("b"))
	assert.Nil(t, entries.Get("missing"))
}
