package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the structured error contract:
// 404 for missing resources, 409 for state conflicts, 400 for validation
// failures and 500 for anything unexpected. Every failure is terminal for
// the triggering call; nothing is retried here.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := dto.NewErrorDetail("INTERNAL_SERVER_ERROR", "Internal server error")

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail("RESOURCE_NOT_FOUND", err.Error())
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCapacityExceeded),
		errors.Is(err, apperrors.ErrDuplicateEnrollment),
		errors.Is(err, apperrors.ErrProfessorHasCourses):
		status = http.StatusConflict
		detail = dto.NewErrorDetail("CONFLICT", err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(apperrors.CodeValidationFailed, err.Error())
	}

	// Carry the richer code and context when the service attached them.
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		if customErr.Code != "" {
			detail.Code = customErr.Code
		}
		if customErr.Field != "" {
			detail = detail.WithField(customErr.Field)
		}
		if customErr.Details != nil {
			detail = detail.WithDetails(customErr.Details)
		}
	}

	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
