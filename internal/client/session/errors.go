package session

import (
	"errors"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/common"
)

var (
	// ErrValidation matches every locally rejected input.
	ErrValidation      = common.ErrorValidation
	ErrInvalidUserType = errors.New("invalid user type")
)

// Fallback reasons shown when the backend gives none.
const (
	LoginFailed        = "Login failed"
	RegistrationFailed = "Registration failed"
)

// Reason turns an authentication failure into a message for the user: the
// backend's own detail when it sent one, the fixed text for a role
// mismatch, fallback otherwise.
func Reason(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidUserType) {
		return "Invalid user type"
	}
	if msg, ok := common.ValidationMessage(err); ok {
		return msg
	}
	if d, ok := client.Detail(err); ok {
		return d
	}
	return fallback
}
