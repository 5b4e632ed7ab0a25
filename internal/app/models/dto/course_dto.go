package dto

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"Compiler Construction"`
	Code        string `json:"code" binding:"required" example:"CS432"`
	Credits     int    `json:"credits" binding:"required,min=1,max=6" example:"3"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,min=1" example:"30"`
	ProfessorID int64  `json:"professorId" binding:"required" example:"1"`
}

// UpdateCourseRequest represents a partial update to a course. Only fields
// present in the payload are applied; the enrolled count is derived and
// cannot be set directly.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Code        *string `json:"code,omitempty"`
	Credits     *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=6"`
	MaxCapacity *int    `json:"maxCapacity,omitempty" binding:"omitempty,min=1"`
	ProfessorID *int64  `json:"professorId,omitempty"`
}

// CourseListFilter holds the supported list filters for courses. Department
// filters through the owning professor's department.
type CourseListFilter struct {
	Department string
	Credits    int
}
