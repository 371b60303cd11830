package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrorTimestampFormat is the layout of ErrorResponse.Timestamp.
const ErrorTimestampFormat = "2006-01-02 15:04:05"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Timestamp string   `json:"timestamp"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Path      string   `json:"path"`
	Details   []string `json:"details"`
}

// NewErrorResponse builds an error body for the given status.
func NewErrorResponse(at time.Time, status int, label, message, path string, details []string) ErrorResponse {
	if details == nil {
		details = []string{}
	}
	return ErrorResponse{
		Timestamp: at.Format(ErrorTimestampFormat),
		Status:    status,
		Error:     label,
		Message:   message,
		Path:      path,
		Details:   details,
	}
}

// Standard error codes for domain faults
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
	Details []string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError reports that no resource matched the lookup key.
func NewNotFoundError(resource, field string, value any) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("%s not found with %s: '%v'", resource, field, value))
}

// NewBadRequestError reports a violated business rule.
func NewBadRequestError(message string) *DomainError {
	return NewDomainError(ErrCodeBadRequest, message)
}

// NewInvalidParameterError reports a malformed path or query parameter.
func NewInvalidParameterError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidParameter, message)
}

// NewValidationError carries one detail per failing field.
func NewValidationError(fields []FieldError) *DomainError {
	details := make([]string, len(fields))
	for i, f := range fields {
		details[i] = f.String()
	}
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// NewDuplicateCategoryError reports a case-insensitive category name clash.
func NewDuplicateCategoryError(name string) *DomainError {
	return NewBadRequestError(fmt.Sprintf("A category with the name '%s' already exists", name))
}

// ErrorCode returns the domain error code carried by err, or ErrCodeInternalError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternalError
}
