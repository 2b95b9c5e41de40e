package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by an EntityService matches exactly one
// of them under errors.Is.
var (
	// ErrValidation: the DTO was rejected before storage was touched.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: no record carries the requested key.
	ErrNotFound = errors.New("not found")
	// ErrStorage: the storage layer failed during Add or GetAll.
	ErrStorage = errors.New("storage failure")
	// ErrOperation: an unexpected failure during Find or Remove.
	ErrOperation = errors.New("operation failed")
)

// Error is the typed failure returned by the service layer. Message is
// meant for people; Err, when set, is the underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause, so errors.Is matches either.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
