package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/services"
	"github.com/mert/unirecords/internal/middleware"
)

// AnalyticsController exposes the derived read-only views.
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetGPADistribution returns the GPA histogram over five bands
// @Summary GPA distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GPADistribution}
// @Router /analytics/students/gpa-distribution [get]
func (c *AnalyticsController) GetGPADistribution(ctx *gin.Context) {
	distribution, err := c.analyticsService.GetGPADistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      distribution,
		Timestamp: time.Now(),
	})
}

// GetCourseEnrollmentStats returns enrollment statistics across courses
// @Summary Course enrollment statistics
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseEnrollmentStats}
// @Router /analytics/courses/enrollment-stats [get]
func (c *AnalyticsController) GetCourseEnrollmentStats(ctx *gin.Context) {
	stats, err := c.analyticsService.GetCourseEnrollmentStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
