package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// msgNamesRequired is the message of every DTO validation failure.
const msgNamesRequired = "first name and last name must be specified"

// validationError converts a validator failure into an ErrValidation
// error. The go-playground/validator package returns one FieldError per
// failing struct field; each becomes a short sentence appended to the
// message.
//
// Example message:
//
//	first name and last name must be specified (field FirstName is required)
func validationError(err error) *Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return newError(ErrValidation, msgNamesRequired, nil)
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return newError(ErrValidation,
		fmt.Sprintf("%s (%s)", msgNamesRequired, strings.Join(msgs, ", ")), nil)
}
