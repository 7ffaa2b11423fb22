package model

import "errors"

// Error codes used to classify domain failures at the HTTP boundary.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorised = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeStorage      = "STORAGE_ERROR"
)

// DomainError is a classified failure that carries a user-facing message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports bad or missing input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewNotFoundError reports a referenced id that does not exist.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(ErrCodeNotFound, message)
}

// NewStorageError reports an unreadable or unwritable document medium.
func NewStorageError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeStorage,
		Message: message,
		Err:     err,
	}
}

// Common domain errors
var (
	ErrUnauthorised     = NewDomainError(ErrCodeUnauthorised, "Unauthorized admin request")
	ErrInvalidPIN       = NewDomainError(ErrCodeUnauthorised, "Invalid admin PIN")
	ErrMealUnavailable  = NewValidationError("Today's meal is currently unavailable")
	ErrInvalidOrder     = NewValidationError("Please provide valid order details")
	ErrBusinessRequired = NewValidationError("Business name and address are required")
	ErrMealRequired     = NewValidationError("Meal name and valid price are required")
	ErrMealDate         = NewValidationError("Meal date must be a valid YYYY-MM-DD date")
	ErrMenuItemRequired = NewValidationError("Menu item name and valid price are required")
	ErrMenuItemNotFound = NewNotFoundError("Menu item not found")
	ErrOrderNotFound    = NewNotFoundError("Order not found")
)

// CodeOf returns the domain code carried by err, or "" for unclassified errors.
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
