package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
	// Details holds every violated rule for ErrCodeValidationFailed, in the
	// order the rules were evaluated.
	Details []string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %d violation(s)", e.Message, len(e.Details))
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAccountNotFound  = "account_not_found"
	ErrCodeResidentNotFound = "resident_not_found"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInternalError    = "internal_error"
)

func validationError(messages []string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeValidationFailed,
		Message: "validation failed",
		Details: messages,
	}
}

func accountNotFound(id int64) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account %d not found", id),
	}
}

func residentNotFound(id int64) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeResidentNotFound,
		Message: fmt.Sprintf("resident %d not found", id),
	}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a ServiceError carrying code.
func IsCode(err error, code string) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}
