package domain

import (
	"errors"
	"fmt"
)

// Validation error codes carried by DomainError.
const (
	ErrCodeRequired       = "REQUIRED"
	ErrCodeInvalidEnum    = "INVALID_ENUM"
	ErrCodeNegativeAmount = "NEGATIVE_AMOUNT"
	ErrCodeInvalidRange   = "INVALID_RANGE"
)

// DomainError is a typed validation failure produced by entity constructors.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func required(field string) *DomainError {
	return &DomainError{Code: ErrCodeRequired, Message: field + " is required"}
}

func invalidEnum(field string, value any) *DomainError {
	return &DomainError{Code: ErrCodeInvalidEnum, Message: fmt.Sprintf("%s has unknown value %q", field, value)}
}

func negativeAmount(field string) *DomainError {
	return &DomainError{Code: ErrCodeNegativeAmount, Message: field + " must not be negative"}
}

// NotFoundError reports a lookup, update, or delete against an id that is not
// present in its collection. The collection itself is left untouched.
type NotFoundError struct {
	Entity EntityType
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
