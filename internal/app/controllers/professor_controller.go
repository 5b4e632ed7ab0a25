package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/services"
	"github.com/mert/unirecords/internal/middleware"
	"github.com/mert/unirecords/internal/pkg/helpers"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{professorService: professorService}
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Description Creates a new professor with the provided information
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or future hire date"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid professor data")
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Description Retrieves a specific professor by its ID
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// GetAllProfessors retrieves professors with optional filtering and pagination
// @Summary List professors
// @Description Retrieves professors, optionally filtered by department
// @Tags professors
// @Produce json
// @Param department query string false "Filter by department"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Professors retrieved successfully"
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	filter := dto.ProfessorListFilter{Department: ctx.Query("department")}

	professors, err := c.professorService.ListProfessors(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	start, end := helpers.CalculateSliceIndices(page, size, len(professors))

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      professors[start:end],
			Pagination: helpers.NewPaginationInfo(int64(len(professors)), page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateProfessor applies a partial update to a professor
// @Summary Update a professor
// @Description Applies the supplied fields to an existing professor; omitted fields are left unchanged
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Professor updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid professor data")
		return
	}

	professor, err := c.professorService.UpdateProfessor(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// DeleteProfessor deletes a professor
// @Summary Delete a professor
// @Description Deletes a professor; fails while any course still references them
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 204 "Professor deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 409 {object} dto.ErrorResponse "Professor still has assigned courses"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetTeachingSchedule lists the courses owned by a professor
// @Summary Get professor teaching schedule
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id}/courses [get]
func (c *ProfessorController) GetTeachingSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	courses, err := c.professorService.GetTeachingSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}
