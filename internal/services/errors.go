package services

import (
	"errors"
	"strings"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrForbidden       = errors.New("forbidden")
)

// ValidationError carries the full list of field-level failures so the API
// can return them alongside the general message, the way the storefront
// clients expect.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func validationFailed(errs ...string) *ValidationError {
	return &ValidationError{Errors: errs}
}
