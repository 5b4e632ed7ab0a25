package services

import (
	"math"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/store"
)

// probationThreshold is the GPA below which a student is placed on academic
// probation.
const probationThreshold = 2.0

// recomputeGPA derives the student's GPA from the credit-weighted average of
// grade points over all graded enrollments, rounded to 2 decimal places, and
// sets the probation flag. Must run inside the caller's Update transaction
// so the derived fields stay consistent with the mutation that triggered the
// recompute.
func recomputeGPA(tx *store.Tx, studentID int64) {
	student, ok := tx.Student(studentID)
	if !ok {
		return
	}

	var totalPoints, totalCredits float64
	for _, e := range tx.EnrollmentsByStudent(studentID) {
		if !e.Graded() {
			continue
		}
		course, ok := tx.Course(e.CourseID)
		if !ok {
			continue
		}
		points, ok := models.GradePoints[e.Grade]
		if !ok {
			continue
		}
		totalPoints += points * float64(course.Credits)
		totalCredits += float64(course.Credits)
	}

	gpa := 0.0
	if totalCredits > 0 {
		gpa = math.Round(totalPoints/totalCredits*100) / 100
	}

	student.GPA = gpa
	student.AcademicProbation = gpa < probationThreshold
	tx.PutStudent(student)
}
