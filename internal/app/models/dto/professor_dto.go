package dto

import "github.com/mert/unirecords/internal/app/models"

// CreateProfessorRequest represents a request to create a professor
type CreateProfessorRequest struct {
	Name       string      `json:"name" binding:"required" example:"Dr. Grace Hopper"`
	Email      string      `json:"email" binding:"required,email" example:"grace.hopper@yale.edu"`
	Department string      `json:"department" binding:"required" example:"Computer Science"`
	HireDate   models.Date `json:"hireDate" example:"1959-01-01"`
}

// UpdateProfessorRequest represents a partial update to a professor. Only
// fields present in the payload are applied.
type UpdateProfessorRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Department *string `json:"department,omitempty" binding:"omitempty,min=1"`
}

// ProfessorListFilter holds the supported list filters for professors.
type ProfessorListFilter struct {
	Department string
}
