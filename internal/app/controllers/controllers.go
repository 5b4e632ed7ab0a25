package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/models/dto"
)

// parseIDParam parses a numeric path parameter, writing a 400 response and
// returning false when it is not a valid id.
func parseIDParam(c *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail("VALIDATION_FAILED", "Invalid "+resource+" ID")
		errorDetail = errorDetail.WithField(name)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindError writes a 400 response for a request body that failed binding.
func bindError(c *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail("VALIDATION_FAILED", message)
	errorDetail = errorDetail.WithDetails(map[string]interface{}{"reason": err.Error()})
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
