package services

import (
	"context"
	"strings"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/mert/unirecords/internal/pkg/apperrors"
)

// ProfessorService handles professor-related operations
type ProfessorService struct {
	store *store.Store
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(st *store.Store) *ProfessorService {
	return &ProfessorService{store: st}
}

// CreateProfessor creates a new professor after checking email uniqueness
// and the hire date rule.
func (s *ProfessorService) CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (models.Professor, error) {
	if req.HireDate.IsZero() {
		return models.Professor{}, apperrors.NewValidationError("hireDate", "Hire date is required")
	}
	if err := checkHireDateNotFuture(req.HireDate); err != nil {
		return models.Professor{}, err
	}

	var created models.Professor
	err := s.store.Update(func(tx *store.Tx) error {
		if err := checkUniqueEmail(tx, req.Email, 0); err != nil {
			return err
		}
		created = tx.InsertProfessor(models.Professor{
			Name:       req.Name,
			Email:      req.Email,
			Department: req.Department,
			HireDate:   req.HireDate,
		})
		return nil
	})
	return created, err
}

// GetProfessorByID retrieves a professor by ID
func (s *ProfessorService) GetProfessorByID(ctx context.Context, id int64) (models.Professor, error) {
	var professor models.Professor
	err := s.store.View(func(tx *store.Tx) error {
		p, ok := tx.Professor(id)
		if !ok {
			return apperrors.NewNotFoundError("Professor", id)
		}
		professor = p
		return nil
	})
	return professor, err
}

// ListProfessors returns professors matching the filter, ordered by id.
func (s *ProfessorService) ListProfessors(ctx context.Context, filter dto.ProfessorListFilter) ([]models.Professor, error) {
	var professors []models.Professor
	err := s.store.View(func(tx *store.Tx) error {
		for _, p := range tx.Professors() {
			if filter.Department != "" && !strings.EqualFold(p.Department, filter.Department) {
				continue
			}
			professors = append(professors, p)
		}
		return nil
	})
	if professors == nil {
		professors = []models.Professor{}
	}
	return professors, err
}

// UpdateProfessor applies a partial patch to an existing professor. Fields
// absent from the payload are left untouched.
func (s *ProfessorService) UpdateProfessor(ctx context.Context, id int64, req dto.UpdateProfessorRequest) (models.Professor, error) {
	var updated models.Professor
	err := s.store.Update(func(tx *store.Tx) error {
		professor, ok := tx.Professor(id)
		if !ok {
			return apperrors.NewNotFoundError("Professor", id)
		}
		if req.Email != nil {
			if err := checkUniqueEmail(tx, *req.Email, id); err != nil {
				return err
			}
			professor.Email = *req.Email
		}
		if req.Name != nil {
			professor.Name = *req.Name
		}
		if req.Department != nil {
			professor.Department = *req.Department
		}
		tx.PutProfessor(professor)
		updated = professor
		return nil
	})
	return updated, err
}

// DeleteProfessor deletes a professor. Deletion is blocked while any course
// still references the professor.
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id int64) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Professor(id); !ok {
			return apperrors.NewNotFoundError("Professor", id)
		}
		if err := checkNoAssignedCourses(tx, id); err != nil {
			return err
		}
		tx.DeleteProfessor(id)
		return nil
	})
}

// GetTeachingSchedule returns all courses owned by the professor.
func (s *ProfessorService) GetTeachingSchedule(ctx context.Context, professorID int64) ([]models.Course, error) {
	var courses []models.Course
	err := s.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Professor(professorID); !ok {
			return apperrors.NewNotFoundError("Professor", professorID)
		}
		courses = tx.CoursesByProfessor(professorID)
		return nil
	})
	return courses, err
}
