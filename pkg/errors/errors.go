package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common cases.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownCategory = errors.New("unknown product category")
)

// AppError represents a structured application error with a stable code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput creates a validation error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// UnknownCategory creates an error for a product whose category has no
// assignment rules.
func UnknownCategory(productID, category string) *AppError {
	return &AppError{
		Code:    "UNKNOWN_CATEGORY",
		Message: fmt.Sprintf("product %s has unmapped category %q", productID, category),
		Err:     ErrUnknownCategory,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}
