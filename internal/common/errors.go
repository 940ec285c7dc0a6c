package common

import (
	"errors"
	"fmt"
)

var (
	// ErrorNotFound is returned by lookups that found nothing.
	ErrorNotFound = errors.New("not found")

	// ErrorValidation marks input rejected locally, before any network call.
	ErrorValidation = errors.New("validation error")
)

// ValidationError carries a message meant for the user. It matches
// ErrorValidation with errors.Is.
type ValidationError struct {
	Msg string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrorValidation }

// ValidationMessage returns the user-facing text of a validation failure
// anywhere in err's chain.
func ValidationMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg, true
	}
	return "", false
}
