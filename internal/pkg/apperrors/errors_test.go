package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Professor", int64(42))

	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "PROFESSOR_NOT_FOUND", err.Code)
	assert.Equal(t, "Professor with ID '42' not found", err.Message)
	assert.Equal(t, "Professor with ID '42' not found", err.Error())
}

func TestNewNotFoundErrorStringID(t *testing.T) {
	err := NewNotFoundError("Enrollment", "studentId: 1, courseId: 2")

	assert.Equal(t, "ENROLLMENT_NOT_FOUND", err.Code)
	assert.Equal(t, "Enrollment with ID 'studentId: 1, courseId: 2' not found", err.Message)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("code", "Invalid course code format")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, "code", err.Field)
}

func TestNewConflictErrorWithDetails(t *testing.T) {
	err := NewConflictError(ErrCapacityExceeded, CodeCapacityExceeded, "Course has reached maximum capacity").
		WithDetails(map[string]interface{}{"maxCapacity": 30})

	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, CodeCapacityExceeded, err.Code)
	assert.Equal(t, 30, err.Details["maxCapacity"])
}

func TestCustomErrorFallsBackToWrappedMessage(t *testing.T) {
	err := &CustomError{Err: ErrBadRequest}
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	var target *CustomError
	require.True(t, errors.As(error(err), &target))
}
