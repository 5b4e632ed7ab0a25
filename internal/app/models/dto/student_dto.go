package dto

// CreateStudentRequest represents a request to create a student
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required" example:"John von Neumann"`
	Email string `json:"email" binding:"required,email" example:"john.vonneumann@ias.edu"`
	Major string `json:"major" binding:"required" example:"Chemical Engineering"`
	Year  int    `json:"year" binding:"required,min=1,max=5" example:"4"`
}

// UpdateStudentRequest represents a partial update to a student. Only fields
// present in the payload are applied; GPA and probation are derived and
// cannot be set directly.
type UpdateStudentRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Major *string `json:"major,omitempty" binding:"omitempty,min=1"`
	Year  *int    `json:"year,omitempty" binding:"omitempty,min=1,max=5"`
}

// StudentListFilter holds the supported list filters for students.
type StudentListFilter struct {
	Major string
	Year  int
}
