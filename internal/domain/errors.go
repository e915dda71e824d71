package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScreen is returned when a screen identifier is not one of the known screens.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrInvalidStep is returned for testing steps outside FirstStep..LastStep.
	ErrInvalidStep = errors.New("invalid testing step")

	ErrUnknownRole = errors.New("unknown role")
)

// ValidationError reports a required field that was missing or malformed.
// Message is the user-facing prompt shown for it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
