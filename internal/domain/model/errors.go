package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDeviceDomainNotFound  = errors.New("device domain not found")
	ErrInvalidDeviceDomainID = errors.New("invalid device domain ID")
	ErrUnknownState          = errors.New("unknown device domain state")
	ErrValidation            = errors.New("validation failed")

	// ErrInvalidState marks a mutation the in-use guard refuses.
	ErrInvalidState                  = errors.New("invalid state for operation")
	ErrCannotUpdateInUseDeviceDomain = fmt.Errorf("%w: cannot update name and brand while device domain is in use", ErrInvalidState)
	ErrCannotDeleteInUseDeviceDomain = fmt.Errorf("%w: device domain in use", ErrInvalidState)

	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
)

const (
	ValidationCodeRequired    = "required"
	ValidationCodeNotNull     = "not_null"
	ValidationCodeInvalidEnum = "invalid_enum"
	ValidationCodeInvalidType = "invalid_type"
)

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationErrors collects every field problem of one request. It matches
// ErrValidation with errors.Is.
type ValidationErrors struct {
	Errors []ValidationError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ErrValidation.Error()
	}

	messages := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		messages = append(messages, e.Message)
	}

	return strings.Join(messages, "; ")
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// OrNil returns v as an error only when it holds at least one problem.
func (v *ValidationErrors) OrNil() error {
	if v == nil || !v.HasErrors() {
		return nil
	}

	return v
}
