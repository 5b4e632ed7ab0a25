package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/services"
	"github.com/mert/unirecords/internal/middleware"
)

// EnrollmentController handles the enroll, grade and drop operations.
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Creates an enrollment after verifying both entities exist, the course has capacity and the pair is not already enrolled
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentConfirmation} "Student enrolled successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Capacity exceeded or duplicate enrollment"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid enrollment data")
		return
	}

	confirmation, err := c.enrollmentService.Enroll(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      confirmation,
		Timestamp: time.Now(),
	})
}

// GetAllEnrollments lists every enrollment
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// Grade assigns a grade to an enrollment
// @Summary Grade an enrollment
// @Description Sets the letter grade for the (student, course) enrollment and recomputes the student's GPA
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Param grade query string true "Letter grade (A-D or F, case-insensitive)"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Malformed grade"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId}/grade [put]
func (c *EnrollmentController) Grade(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.Grade(ctx, studentID, courseID, ctx.Query("grade"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// Drop removes an enrollment
// @Summary Drop a course
// @Description Removes the (student, course) enrollment, decrements the course's enrolled count and recomputes the student's GPA
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 204 "Enrollment dropped successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId} [delete]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	if err := c.enrollmentService.Drop(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
