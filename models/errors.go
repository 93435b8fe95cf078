package models

import "errors"

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// ValidationError marks input that must be rejected before any write happens.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
