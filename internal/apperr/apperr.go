// Package apperr holds the error kinds shared by the game and player services.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to a stored entity.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports a request that failed input checks before reaching
// domain logic.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
