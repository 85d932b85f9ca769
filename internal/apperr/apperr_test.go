package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "name: is required", Invalid("name", "is required").Error())
	assert.Equal(t, "malformed body", (&ValidationError{Reason: "malformed body"}).Error())
}

func TestIsValidationUnwraps(t *testing.T) {
	err := fmt.Errorf("decode start game: %w", Invalid("name", "is required"))

	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrNotFound))
}
