package services

import (
	"fmt"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/pkg/apperrors"
)

// Invariant rules checked before committing a mutation. Each rule is a pure
// predicate over the current transaction state and returns a structured
// error when it fails.

// checkUniqueEmail fails when any professor or student other than excludeID
// already holds the email. Pass 0 to exclude nothing; ids start at 1.
func checkUniqueEmail(tx *store.Tx, email string, excludeID int64) error {
	for _, p := range tx.Professors() {
		if p.Email == email && p.ID != excludeID {
			return apperrors.NewConflictError(apperrors.ErrEmailAlreadyExists,
				apperrors.CodeEmailAlreadyExists,
				fmt.Sprintf("Email '%s' is already in use", email))
		}
	}
	for _, st := range tx.Students() {
		if st.Email == email && st.ID != excludeID {
			return apperrors.NewConflictError(apperrors.ErrEmailAlreadyExists,
				apperrors.CodeEmailAlreadyExists,
				fmt.Sprintf("Email '%s' is already in use", email))
		}
	}
	return nil
}

// checkHireDateNotFuture fails when the date is after today.
func checkHireDateNotFuture(date models.Date) error {
	if date.After(models.Today()) {
		return apperrors.NewValidationError("hireDate", "Hire date cannot be in the future")
	}
	return nil
}

// checkCapacity fails when the course is already at its maximum capacity.
func checkCapacity(course models.Course) error {
	if course.EnrolledStudents >= course.MaxCapacity {
		return apperrors.NewConflictError(apperrors.ErrCapacityExceeded,
			apperrors.CodeCapacityExceeded,
			"Course has reached maximum capacity").
			WithDetails(map[string]interface{}{
				"currentEnrollment": course.EnrolledStudents,
				"maxCapacity":       course.MaxCapacity,
			})
	}
	return nil
}

// checkNoDuplicateEnrollment fails when a live enrollment already links the
// (student, course) pair.
func checkNoDuplicateEnrollment(tx *store.Tx, studentID, courseID int64) error {
	if _, ok := tx.EnrollmentByPair(studentID, courseID); ok {
		return apperrors.NewConflictError(apperrors.ErrDuplicateEnrollment,
			apperrors.CodeDuplicateEnrollment,
			"Student is already enrolled in this course")
	}
	return nil
}

// checkNoAssignedCourses blocks professor deletion while any course still
// references the professor, listing the offending course ids.
func checkNoAssignedCourses(tx *store.Tx, professorID int64) error {
	courses := tx.CoursesByProfessor(professorID)
	if len(courses) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return apperrors.NewConflictError(apperrors.ErrProfessorHasCourses,
		apperrors.CodeProfessorHasCourses,
		"Cannot delete professor, reassign courses first").
		WithDetails(map[string]interface{}{"assignedCourses": ids})
}
