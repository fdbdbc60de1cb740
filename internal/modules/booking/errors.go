package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotAvailable            = errors.New("item not available for booking")
	ErrNotFound                = errors.New("booking not found")
	ErrItemNotFound            = errors.New("catalog item not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrConflict                = errors.New("booking reference conflict")
)

// FieldErrors carries per-field validation failures to the handler; it
// unwraps to ErrValidation so service callers can match the sentinel.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return ErrValidation.Error() }

func (e FieldErrors) Unwrap() error { return ErrValidation }
