package validator_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactform/pkg/rules"
	"github.com/dmitrymomot/reactform/pkg/validator"
)

func TestParse(t *testing.T) {
	t.Run("string becomes named validator", func(t *testing.T) {
		v, err := validator.Parse("email")
		require.NoError(t, err)
		assert.Equal(t, validator.KindName, v.Kind())
		assert.Equal(t, "email", v.Name())
	})

	t.Run("regular expression becomes pattern", func(t *testing.T) {
		re := regexp.MustCompile(`^\d+$`)
		v, err := validator.Parse(re)
		require.NoError(t, err)
		assert.Equal(t, validator.KindPattern, v.Kind())
		assert.Same(t, re, v.Regexp())
	})

	t.Run("regular expression value becomes pattern", func(t *testing.T) {
		v, err := validator.Parse(*regexp.MustCompile(`^a$`))
		require.NoError(t, err)
		assert.Equal(t, validator.KindPattern, v.Kind())
		assert.Equal(t, "/^a$/", v.String())

		check, err := validator.Resolve(v)
		require.NoError(t, err)
		assert.True(t, check("a"))
		assert.False(t, check("b"))
	})

	t.Run("predicate types become func", func(t *testing.T) {
		v, err := validator.Parse(func(any) bool { return true })
		require.NoError(t, err)
		assert.Equal(t, validator.KindFunc, v.Kind())

		v, err = validator.Parse(rules.Predicate(func(any) bool { return true }))
		require.NoError(t, err)
		assert.Equal(t, validator.KindFunc, v.Kind())
	})

	t.Run("validator passes through", func(t *testing.T) {
		v, err := validator.Parse(validator.LengthSpec("min:1"))
		require.NoError(t, err)
		assert.Equal(t, validator.KindLength, v.Kind())
	})

	t.Run("other types are rejected", func(t *testing.T) {
		for _, input := range []any{42, nil, true, []string{"required"}, validator.Validator{}, (*regexp.Regexp)(nil)} {
			_, err := validator.Parse(input)
			require.Error(t, err, "input %#v", input)
			assert.ErrorIs(t, err, validator.ErrInvalidValidatorType)
			assert.True(t, validator.IsInvalidValidatorTypeError(err))
		}
	})

	t.Run("must parse panics on bad input", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustParse(3.14) })
		assert.NotPanics(t, func() { validator.MustParse("required") })
	})
}

func TestValidator_Constructors(t *testing.T) {
	assert.True(t, validator.Pattern(nil).IsZero())
	assert.True(t, validator.Func(nil).IsZero())
	assert.True(t, validator.Named("required").IsRequired())
	assert.False(t, validator.LengthSpec("required").IsRequired())
	assert.False(t, validator.Named("email").IsRequired())
}

func TestValidator_String(t *testing.T) {
	assert.Equal(t, "email", validator.Named("email").String())
	assert.Equal(t, "min:2 max:5", validator.LengthSpec("min:2 max:5").String())
	assert.Equal(t, `/^\d+$/`, validator.Pattern(regexp.MustCompile(`^\d+$`)).String())
	assert.Equal(t, "func", validator.Func(func(any) bool { return true }).String())
	assert.Equal(t, "", validator.Validator{}.String())
	assert.Equal(t, "invalid", validator.Validator{}.Kind().String())
	assert.Equal(t, "pattern", validator.KindPattern.String())
}

func TestResult_JSON(t *testing.T) {
	res := validator.Result{Name: "name", Valid: false, Msg: "required!", Validator: validator.Named("required")}
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"name","dirty":false,"valid":false,"msg":"required!","validator":"required"}`, string(data))
}

func TestRuleConstructors(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+$`)
	cfg := validator.Config{}
	cfg.Add("name", validator.Required("required"), validator.Len("min:2", "")).
		Add("code", validator.Match(re, "letters"), validator.Use("slug", "slug")).
		Add("age", validator.Check(func(v any) bool { return v != nil }, "age"))

	require.Len(t, cfg["name"], 2)
	assert.True(t, cfg["name"][0].Validator.IsRequired())
	assert.Equal(t, validator.KindLength, cfg["name"][1].Validator.Kind())
	assert.Equal(t, validator.KindPattern, cfg["code"][0].Validator.Kind())
	assert.Equal(t, validator.KindName, cfg["code"][1].Validator.Kind())
	assert.Equal(t, validator.KindFunc, cfg["age"][0].Validator.Kind())

	clone := cfg.Clone()
	clone.Add("name", validator.Use("alpha", ""))
	assert.Len(t, cfg["name"], 2)
	assert.Len(t, clone["name"], 3)
}
