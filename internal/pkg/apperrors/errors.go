package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Conflict errors
	ErrEmailAlreadyExists  = errors.New("email already in use")
	ErrCapacityExceeded    = errors.New("course has reached maximum capacity")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")
	ErrProfessorHasCourses = errors.New("professor still has assigned courses")
)

// Stable error codes carried to API clients.
const (
	CodeEmailAlreadyExists  = "EMAIL_ALREADY_EXISTS"
	CodeCapacityExceeded    = "ENROLLMENT_CAPACITY_EXCEEDED"
	CodeDuplicateEnrollment = "DUPLICATE_ENROLLMENT"
	CodeProfessorHasCourses = "PROFESSOR_HAS_COURSES"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithField marks the offending request field
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewNotFoundError creates an error for a missing entity. The code is derived
// from the resource name, e.g. "Professor" -> "PROFESSOR_NOT_FOUND".
func NewNotFoundError(resource string, id interface{}) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf("%s with ID '%v' not found", resource, id),
		Code:    strings.ToUpper(strings.ReplaceAll(resource, " ", "_")) + "_NOT_FOUND",
	}
}

// NewValidationError creates an error for a field that failed validation.
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Code:    CodeValidationFailed,
		Field:   field,
	}
}

// NewConflictError creates an error for a state conflict. The sentinel
// determines the HTTP status mapping, the code is what clients switch on.
func NewConflictError(sentinel error, code, message string) *CustomError {
	return &CustomError{
		Err:     sentinel,
		Message: message,
		Code:    code,
	}
}
