package services

import (
	"context"
	"strings"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/pkg/apperrors"
)

// StudentService handles student-related operations
type StudentService struct {
	store *store.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(st *store.Store) *StudentService {
	return &StudentService{store: st}
}

// CreateStudent creates a new student after checking email uniqueness. New
// students start with a 0.0 GPA and no probation flag.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	var created models.Student
	err := s.store.Update(func(tx *store.Tx) error {
		if err := checkUniqueEmail(tx, req.Email, 0); err != nil {
			return err
		}
		created = tx.InsertStudent(models.Student{
			Name:  req.Name,
			Email: req.Email,
			Major: req.Major,
			Year:  req.Year,
		})
		return nil
	})
	return created, err
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (models.Student, error) {
	var student models.Student
	err := s.store.View(func(tx *store.Tx) error {
		st, ok := tx.Student(id)
		if !ok {
			return apperrors.NewNotFoundError("Student", id)
		}
		student = st
		return nil
	})
	return student, err
}

// ListStudents returns students matching the filter, ordered by id.
func (s *StudentService) ListStudents(ctx context.Context, filter dto.StudentListFilter) ([]models.Student, error) {
	var students []models.Student
	err := s.store.View(func(tx *store.Tx) error {
		for _, st := range tx.Students() {
			if filter.Major != "" && !strings.EqualFold(st.Major, filter.Major) {
				continue
			}
			if filter.Year != 0 && st.Year != filter.Year {
				continue
			}
			students = append(students, st)
		}
		return nil
	})
	if students == nil {
		students = []models.Student{}
	}
	return students, err
}

// UpdateStudent applies a partial patch to an existing student. Fields
// absent from the payload are left untouched; GPA and probation stay derived.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (models.Student, error) {
	var updated models.Student
	err := s.store.Update(func(tx *store.Tx) error {
		student, ok := tx.Student(id)
		if !ok {
			return apperrors.NewNotFoundError("Student", id)
		}
		if req.Email != nil {
			if err := checkUniqueEmail(tx, *req.Email, id); err != nil {
				return err
			}
			student.Email = *req.Email
		}
		if req.Name != nil {
			student.Name = *req.Name
		}
		if req.Major != nil {
			student.Major = *req.Major
		}
		if req.Year != nil {
			student.Year = *req.Year
		}
		tx.PutStudent(student)
		updated = student
		return nil
	})
	return updated, err
}

// DeleteStudent deletes a student and cascades: every enrollment of the
// student is removed and each affected course's enrolled count decremented.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Student(id); !ok {
			return apperrors.NewNotFoundError("Student", id)
		}
		for _, e := range tx.EnrollmentsByStudent(id) {
			if course, ok := tx.Course(e.CourseID); ok {
				if course.EnrolledStudents > 0 {
					course.EnrolledStudents--
				}
				tx.PutCourse(course)
			}
			tx.DeleteEnrollment(e.ID)
		}
		tx.DeleteStudent(id)
		return nil
	})
}

// GetStudentCourses returns the courses the student is currently enrolled in.
func (s *StudentService) GetStudentCourses(ctx context.Context, studentID int64) ([]models.Course, error) {
	courses := []models.Course{}
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Student(studentID); !ok {
			return apperrors.NewNotFoundError("Student", studentID)
		}
		for _, e := range tx.EnrollmentsByStudent(studentID) {
			if course, ok := tx.Course(e.CourseID); ok {
				courses = append(courses, course)
			}
		}
		return nil
	})
	return courses, err
}
