package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactform/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_Is(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	wrapped := fmt.Errorf("submit: %w", errs)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.NotErrorIs(t, wrapped, validator.ErrUnknownRule)
}

func TestValidationErrors_Has(t *testing.T) {
	t.Run("returns true for field with errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

		assert.True(t, errs.Has("email"))
	})

	t.Run("returns false for field without errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

		assert.False(t, errs.Has("password"))
	})
}

func TestValidationErrors_Get(t *testing.T) {
	t.Run("returns messages for existing field", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "invalid format"})

		assert.Equal(t, []string{"is required", "invalid format"}, errs.Get("email"))
	})

	t.Run("returns empty slice for non-existent field", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Empty(t, errs.Get("nonexistent"))
	})
}

func TestValidationErrors_Fields(t *testing.T) {
	t.Run("returns unique fields in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "invalid format"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("returns empty slice for no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Empty(t, errs.Fields())
		assert.True(t, errs.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts ValidationErrors from wrapped error", func(t *testing.T) {
		var originalErrs validator.ValidationErrors
		originalErrs.Add(validator.ValidationError{Field: "email", Message: "is required"})

		extractedErrs := validator.ExtractValidationErrors(fmt.Errorf("wrap: %w", originalErrs))
		require.NotNil(t, extractedErrs)
		assert.True(t, extractedErrs.Has("email"))
	})

	t.Run("returns nil for non-ValidationErrors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestIsValidationError(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	assert.True(t, validator.IsValidationError(errs))
	assert.False(t, validator.IsValidationError(errors.New("regular error")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestResults(t *testing.T) {
	results := validator.Results{
		{Name: "a", Valid: true},
		{Name: "b", Valid: false, Msg: "b is bad", Validator: validator.Named("required")},
		{Name: "c", Valid: false, Msg: "c is bad", Validator: validator.LengthSpec("min:3")},
	}

	t.Run("first invalid in order", func(t *testing.T) {
		bad, ok := results.FirstInvalid()
		require.True(t, ok)
		assert.Equal(t, "b", bad.Name)
		assert.False(t, results.Valid())
	})

	t.Run("errors collect every failure", func(t *testing.T) {
		errs := results.Errors()
		require.Len(t, errs, 2)
		assert.Equal(t, validator.ValidationError{Field: "b", Message: "b is bad", Rule: "required"}, errs[0])
		assert.Equal(t, validator.ValidationError{Field: "c", Message: "c is bad", Rule: "min:3"}, errs[1])
	})

	t.Run("all valid", func(t *testing.T) {
		ok := validator.Results{{Name: "a", Valid: true}}
		_, found := ok.FirstInvalid()
		assert.False(t, found)
		assert.True(t, ok.Valid())
		assert.Nil(t, ok.Errors())
	})
}
