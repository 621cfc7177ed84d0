package models

import "errors"

// Error taxonomy shared by the store, services and handlers.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrDataUnavailable = errors.New("data unavailable")
)

// ConflictError reports a create that collided with an existing record.
type ConflictError struct {
	Reason   string
	Existing Document
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
