package services

import (
	"context"
	"fmt"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/pkg/apperrors"
	"github.com/mert/unirecords/internal/pkg/validation"
)

// EnrollmentService handles the composite enroll, grade and drop operations.
// Each operation runs inside a single store transaction: all preconditions
// are verified before the first write, so a failure leaves no partial
// mutation visible.
type EnrollmentService struct {
	store *store.Store
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(st *store.Store) *EnrollmentService {
	return &EnrollmentService{store: st}
}

// Enroll links a student to a course: both must exist, the course must have
// capacity left and no live enrollment may already link the pair. On success
// the course's enrolled count is incremented and a confirmation view with
// the current student and course snapshots is returned.
func (s *EnrollmentService) Enroll(ctx context.Context, req dto.CreateEnrollmentRequest) (dto.EnrollmentConfirmation, error) {
	var confirmation dto.EnrollmentConfirmation
	err := s.store.Update(func(tx *store.Tx) error {
		student, ok := tx.Student(req.StudentID)
		if !ok {
			return apperrors.NewNotFoundError("Student", req.StudentID)
		}
		course, ok := tx.Course(req.CourseID)
		if !ok {
			return apperrors.NewNotFoundError("Course", req.CourseID)
		}
		if err := checkCapacity(course); err != nil {
			return err
		}
		if err := checkNoDuplicateEnrollment(tx, student.ID, course.ID); err != nil {
			return err
		}

		enrollment := tx.InsertEnrollment(models.Enrollment{
			StudentID:      student.ID,
			CourseID:       course.ID,
			EnrollmentDate: models.Today(),
		})
		course.EnrolledStudents++
		tx.PutCourse(course)

		confirmation = dto.EnrollmentConfirmation{
			Message:        "Student successfully enrolled",
			EnrollmentID:   enrollment.ID,
			Student:        student,
			Course:         course,
			EnrollmentDate: enrollment.EnrollmentDate,
		}
		return nil
	})
	return confirmation, err
}

// ListEnrollments returns all enrollments in token order.
func (s *EnrollmentService) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.store.View(func(tx *store.Tx) error {
		enrollments = tx.Enrollments()
		return nil
	})
	return enrollments, err
}

// Grade assigns a letter grade to the enrollment identified by the
// (student, course) pair and recomputes the student's GPA. Re-grading an
// already-graded enrollment is permitted.
func (s *EnrollmentService) Grade(ctx context.Context, studentID, courseID int64, grade string) (models.Enrollment, error) {
	normalized, ok := validation.NormalizeGrade(grade)
	if !ok {
		return models.Enrollment{}, apperrors.NewValidationError("grade", "Grade must be one of A, B, C, D or F")
	}

	var graded models.Enrollment
	err := s.store.Update(func(tx *store.Tx) error {
		enrollment, ok := tx.EnrollmentByPair(studentID, courseID)
		if !ok {
			return apperrors.NewNotFoundError("Enrollment", enrollmentPairID(studentID, courseID))
		}
		enrollment.Grade = normalized
		tx.PutEnrollment(enrollment)
		recomputeGPA(tx, studentID)
		graded = enrollment
		return nil
	})
	return graded, err
}

// Drop removes the enrollment identified by the (student, course) pair,
// decrements the course's enrolled count and recomputes the student's GPA;
// a grade on the dropped enrollment no longer counts.
func (s *EnrollmentService) Drop(ctx context.Context, studentID, courseID int64) error {
	return s.store.Update(func(tx *store.Tx) error {
		enrollment, ok := tx.EnrollmentByPair(studentID, courseID)
		if !ok {
			return apperrors.NewNotFoundError("Enrollment", enrollmentPairID(studentID, courseID))
		}
		// The count is floored at zero; if the course is already gone the
		// cascade took care of it.
		if course, ok := tx.Course(courseID); ok {
			if course.EnrolledStudents > 0 {
				course.EnrolledStudents--
			}
			tx.PutCourse(course)
		}
		tx.DeleteEnrollment(enrollment.ID)
		recomputeGPA(tx, studentID)
		return nil
	})
}

func enrollmentPairID(studentID, courseID int64) string {
	return fmt.Sprintf("studentId: %d, courseId: %d", studentID, courseID)
}
