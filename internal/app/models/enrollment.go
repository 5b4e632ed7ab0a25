package models

// Valid letter grades and their point values.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeF = "F"
)

// GradePoints maps a letter grade to its grade-point value.
var GradePoints = map[string]float64{
	GradeA: 4.0,
	GradeB: 3.0,
	GradeC: 2.0,
	GradeD: 1.0,
	GradeF: 0.0,
}

// Enrollment links one student to one course. At most one enrollment exists
// per (student, course) pair; the ID is an opaque token separate from that
// identity.
type Enrollment struct {
	ID             string `json:"id" example:"ENR1"`
	StudentID      int64  `json:"studentId" example:"1"`
	CourseID       int64  `json:"courseId" example:"1"`
	EnrollmentDate Date   `json:"enrollmentDate" example:"2026-08-23"`
	Grade          string `json:"grade,omitempty" example:"A"` // Empty until graded
}

// Graded reports whether a grade has been assigned.
func (e Enrollment) Graded() bool {
	return e.Grade != ""
}
