package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the targeted record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed mandatory field, or an
// invalid status value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
