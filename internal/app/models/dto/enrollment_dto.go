package dto

import "github.com/mert/unirecords/internal/app/models"

// CreateEnrollmentRequest represents a request to enroll a student in a course
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"1"`
	CourseID  int64 `json:"courseId" binding:"required" example:"1"`
}

// EnrollmentConfirmation is the composed view returned after a successful
// enrollment, embedding the current student and course snapshots.
type EnrollmentConfirmation struct {
	Message        string         `json:"message" example:"Student successfully enrolled"`
	EnrollmentID   string         `json:"enrollmentId" example:"ENR2"`
	Student        models.Student `json:"student"`
	Course         models.Course  `json:"course"`
	EnrollmentDate models.Date    `json:"enrollmentDate" example:"2026-08-23"`
}
