package models

// Course represents a course owned by a professor.
type Course struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Compiler Construction"`
	Code        string `json:"code" example:"CS432"` // 2-4 uppercase letters + 3 digits
	Credits     int    `json:"credits" example:"3"`  // 1-6
	MaxCapacity int    `json:"maxCapacity" example:"30"`
	ProfessorID int64  `json:"professorId" example:"1"`

	// EnrolledStudents is maintained incrementally and always equals the
	// number of live enrollments referencing the course.
	EnrolledStudents int `json:"enrolledStudents" example:"12"`
}
