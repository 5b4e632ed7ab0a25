package services

import (
	"context"
	"strings"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/pkg/apperrors"
	"github.com/mert/unirecords/internal/pkg/validation"
)

const courseCodeFormatMessage = `Invalid course code format. Use format like "CS101" or "MATH203"`

// CourseService handles course-related operations
type CourseService struct {
	store *store.Store
}

// NewCourseService creates a new course service instance
func NewCourseService(st *store.Store) *CourseService {
	return &CourseService{store: st}
}

// CreateCourse creates a new course. The code is normalized to uppercase and
// the owning professor must exist.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (models.Course, error) {
	code, ok := validation.NormalizeCourseCode(req.Code)
	if !ok {
		return models.Course{}, apperrors.NewValidationError("code", courseCodeFormatMessage)
	}

	var created models.Course
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Professor(req.ProfessorID); !ok {
			return apperrors.NewNotFoundError("Professor", req.ProfessorID)
		}
		created = tx.InsertCourse(models.Course{
			Name:        req.Name,
			Code:        code,
			Credits:     req.Credits,
			MaxCapacity: req.MaxCapacity,
			ProfessorID: req.ProfessorID,
		})
		return nil
	})
	return created, err
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	err := s.store.View(func(tx *store.Tx) error {
		c, ok := tx.Course(id)
		if !ok {
			return apperrors.NewNotFoundError("Course", id)
		}
		course = c
		return nil
	})
	return course, err
}

// ListCourses returns courses matching the filter, ordered by id. The
// department filter matches against the owning professor's department.
func (s *CourseService) ListCourses(ctx context.Context, filter dto.CourseListFilter) ([]models.Course, error) {
	var courses []models.Course
	err := s.store.View(func(tx *store.Tx) error {
		for _, c := range tx.Courses() {
			if filter.Credits != 0 && c.Credits != filter.Credits {
				continue
			}
			if filter.Department != "" {
				professor, ok := tx.Professor(c.ProfessorID)
				if !ok || !strings.EqualFold(professor.Department, filter.Department) {
					continue
				}
			}
			courses = append(courses, c)
		}
		return nil
	})
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, err
}

// UpdateCourse applies a partial patch to an existing course. Fields absent
// from the payload are left untouched; the enrolled count stays derived.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (models.Course, error) {
	var code string
	if req.Code != nil {
		normalized, ok := validation.NormalizeCourseCode(*req.Code)
		if !ok {
			return models.Course{}, apperrors.NewValidationError("code", courseCodeFormatMessage)
		}
		code = normalized
	}

	var updated models.Course
	err := s.store.Update(func(tx *store.Tx) error {
		course, ok := tx.Course(id)
		if !ok {
			return apperrors.NewNotFoundError("Course", id)
		}
		if req.ProfessorID != nil {
			if _, ok := tx.Professor(*req.ProfessorID); !ok {
				return apperrors.NewNotFoundError("Professor", *req.ProfessorID)
			}
			course.ProfessorID = *req.ProfessorID
		}
		if req.Name != nil {
			course.Name = *req.Name
		}
		if req.Code != nil {
			course.Code = code
		}
		if req.Credits != nil {
			course.Credits = *req.Credits
		}
		if req.MaxCapacity != nil {
			course.MaxCapacity = *req.MaxCapacity
		}
		tx.PutCourse(course)
		updated = course
		return nil
	})
	return updated, err
}

// DeleteCourse deletes a course and cascades: every enrollment referencing
// the course is removed. No enrolled-count fix-up is needed since the course
// itself is gone; affected students' GPAs stay as-is until their next grade
// or drop.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Course(id); !ok {
			return apperrors.NewNotFoundError("Course", id)
		}
		for _, e := range tx.EnrollmentsByCourse(id) {
			tx.DeleteEnrollment(e.ID)
		}
		tx.DeleteCourse(id)
		return nil
	})
}

// GetCourseRoster returns the students currently enrolled in the course.
func (s *CourseService) GetCourseRoster(ctx context.Context, courseID int64) ([]models.Student, error) {
	roster := []models.Student{}
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Course(courseID); !ok {
			return apperrors.NewNotFoundError("Course", courseID)
		}
		for _, e := range tx.EnrollmentsByCourse(courseID) {
			if student, ok := tx.Student(e.StudentID); ok {
				roster = append(roster, student)
			}
		}
		return nil
	})
	return roster, err
}
