package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooloolooz/bumazhka/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("default message when empty", func(t *testing.T) {
		var verrs validator.ValidationErrors
		assert.Equal(t, "validation failed", verrs.Error())
	})

	t.Run("formats a single error", func(t *testing.T) {
		var verrs validator.ValidationErrors
		verrs.Add(validator.ValidationError{Field: "ogrn", Message: "must be a valid OGRN"})
		assert.Equal(t, "validation failed: ogrn: must be a valid OGRN", verrs.Error())
	})

	t.Run("formats multiple errors", func(t *testing.T) {
		var verrs validator.ValidationErrors
		verrs.Add(validator.ValidationError{Field: "ogrn", Message: "must be a valid OGRN"})
		verrs.Add(validator.ValidationError{Field: "record", Message: "must be a valid state registration number"})

		msg := verrs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "ogrn: must be a valid OGRN")
		assert.Contains(t, msg, "record: must be a valid state registration number")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "ogrn", Message: "wrong length"},
		{Field: "ogrn", Message: "bad checksum"},
		{Field: "record", Message: "unknown region"},
	}

	assert.True(t, verrs.Has("ogrn"))
	assert.False(t, verrs.Has("missing"))
	assert.Equal(t, []string{"wrong length", "bad checksum"}, verrs.Get("ogrn"))
	assert.Nil(t, verrs.Get("missing"))
	assert.Equal(t, []string{"ogrn", "record"}, verrs.Fields())
	assert.False(t, verrs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "a", Message: "never"},
	}
	fail := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "b", Message: "always"},
	}

	t.Run("nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(pass, fail, fail)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "b", verrs[0].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.Apply(validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "ogrn", Message: "bad"},
		})
		wrapped := fmt.Errorf("saving company: %w", inner)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.True(t, validator.IsValidationError(wrapped))
	})
}
