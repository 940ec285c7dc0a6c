package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/go-playground/validator/v10"
)

var ErrValidation = common.ErrorValidation

const msgScholarURL = "Please enter a valid Google Scholar URL"

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationError converts the first validator failure into a message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return common.NewValidationError("%v", err)
	}

	fe := verrs[0]
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return common.NewValidationError("%s is required", field)
	case "datetime":
		return common.NewValidationError("%s must be a date in YYYY-MM-DD form", field)
	default:
		return common.NewValidationError("%s is invalid", field)
	}
}

func fieldLabel(name string) string {
	switch name {
	case "DateIssued":
		return "date issued"
	default:
		return strings.ToLower(name)
	}
}
