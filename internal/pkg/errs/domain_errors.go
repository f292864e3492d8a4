package errs

import "errors"

// Error kinds reported to callers. Concrete errors are marked with one of these
// so transports can map them without knowing every specific error.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
)

// Kind returns the taxonomy marker carried by err, or nil for unclassified errors.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, ErrNotFound):
		return ErrNotFound
	case Is(err, ErrConflict):
		return ErrConflict
	case Is(err, ErrInvalidState):
		return ErrInvalidState
	case Is(err, ErrValidation):
		return ErrValidation
	default:
		return nil
	}
}

func NotFound(msg string) error     { return Mark(New(msg), ErrNotFound) }
func Conflict(msg string) error     { return Mark(New(msg), ErrConflict) }
func InvalidState(msg string) error { return Mark(New(msg), ErrInvalidState) }
func Validation(msg string) error   { return Mark(New(msg), ErrValidation) }
