package validator_test

import (
	"testing"

	"go-storepos/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name  string    `validate:"required"`
	Email string    `validate:"omitempty,email"`
	ID    uuid.UUID `validate:"uuid_required"`
}

func Test_ValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       sampleInput
		failedCount int
	}{
		{
			name:        "valid input has no failures",
			input:       sampleInput{Name: "Budi", Email: "budi@example.com", ID: uuid.New()},
			failedCount: 0,
		},
		{
			name:        "missing required field",
			input:       sampleInput{ID: uuid.New()},
			failedCount: 1,
		},
		{
			name:        "nil uuid fails the custom rule",
			input:       sampleInput{Name: "Budi"},
			failedCount: 1,
		},
		{
			name:        "multiple failures are all reported",
			input:       sampleInput{Email: "not-an-email"},
			failedCount: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validator.ValidateStruct(tc.input)
			assert.Len(t, errs, tc.failedCount)
		})
	}
}

func Test_FirstError(t *testing.T) {
	t.Run("nil for an empty list", func(t *testing.T) {
		assert.NoError(t, validator.FirstError(nil))
	})

	t.Run("names the field and tag", func(t *testing.T) {
		errs := validator.ValidateStruct(sampleInput{ID: uuid.New()})
		err := validator.FirstError(errs)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Name")
		assert.Contains(t, err.Error(), "required")
	})
}

func Test_FieldError(t *testing.T) {
	err := &validator.FieldError{Field: "status", Message: "not allowed"}
	assert.Equal(t, "not allowed", err.Error())
}
