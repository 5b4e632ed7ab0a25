package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/pkg/apperrors"
)

func TestCreateProfessor(t *testing.T) {
	f := newFixture(t)

	professor, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Grace Hopper",
		Email:      "grace.hopper@yale.edu",
		Department: "Computer Science",
		HireDate:   models.NewDate(1959, time.January, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), professor.ID)
	assert.Equal(t, "Dr. Grace Hopper", professor.Name)
}

func TestCreateProfessorRejectsFutureHireDate(t *testing.T) {
	f := newFixture(t)

	future := models.Today()
	future = models.NewDate(future.Year()+1, future.Month(), future.Day())

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Later",
		Email:      "later@example.com",
		Department: "Physics",
		HireDate:   future,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "hireDate", customErr.Field)
}

func TestCreateProfessorAcceptsTodayAsHireDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Now",
		Email:      "now@example.com",
		Department: "Physics",
		HireDate:   models.Today(),
	})
	assert.NoError(t, err)
}

func TestCreateProfessorRequiresHireDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Missing",
		Email:      "missing@example.com",
		Department: "Physics",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateProfessorRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.createProfessor(t, "Dr. One", "shared@example.com")

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Two",
		Email:      "shared@example.com",
		Department: "Physics",
		HireDate:   models.NewDate(2015, time.March, 1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, customErr.Code)
}

func TestCreateProfessorRejectsEmailHeldByStudent(t *testing.T) {
	f := newFixture(t)
	f.createStudent(t, "Joan", "joan@example.com")

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Joan",
		Email:      "joan@example.com",
		Department: "Mathematics",
		HireDate:   models.NewDate(2015, time.March, 1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestGetProfessorByIDNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.professors.GetProfessorByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "PROFESSOR_NOT_FOUND", customErr.Code)
	assert.Equal(t, "Professor with ID '42' not found", customErr.Message)
}

func TestListProfessorsFiltersByDepartment(t *testing.T) {
	f := newFixture(t)
	f.createProfessor(t, "Dr. CS", "cs@example.com")

	_, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       "Dr. Math",
		Email:      "math@example.com",
		Department: "Mathematics",
		HireDate:   models.NewDate(2012, time.June, 1),
	})
	require.NoError(t, err)

	listed, err := f.professors.ListProfessors(context.Background(), dto.ProfessorListFilter{Department: "mathematics"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Dr. Math", listed[0].Name)

	all, err := f.professors.ListProfessors(context.Background(), dto.ProfessorListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateProfessorPartialPatch(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. Original", "original@example.com")

	updated, err := f.professors.UpdateProfessor(context.Background(), professor.ID, dto.UpdateProfessorRequest{
		Department: strPtr("Electrical Engineering"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Electrical Engineering", updated.Department)
	// Untouched fields keep their values.
	assert.Equal(t, "Dr. Original", updated.Name)
	assert.Equal(t, "original@example.com", updated.Email)
}

func TestUpdateProfessorKeepingOwnEmail(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. Self", "self@example.com")

	// Re-submitting the current email must not trip the uniqueness check.
	updated, err := f.professors.UpdateProfessor(context.Background(), professor.ID, dto.UpdateProfessorRequest{
		Email: strPtr("self@example.com"),
		Name:  strPtr("Dr. Self Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Self Renamed", updated.Name)
}

func TestUpdateProfessorRejectsTakenEmail(t *testing.T) {
	f := newFixture(t)
	f.createProfessor(t, "Dr. One", "one@example.com")
	second := f.createProfessor(t, "Dr. Two", "two@example.com")

	_, err := f.professors.UpdateProfessor(context.Background(), second.ID, dto.UpdateProfessorRequest{
		Email: strPtr("one@example.com"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestDeleteProfessorBlockedByAssignedCourses(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. Busy", "busy@example.com")
	courseA := f.createCourse(t, "CS101", 3, 30, professor.ID)
	courseB := f.createCourse(t, "CS201", 4, 25, professor.ID)

	err := f.professors.DeleteProfessor(context.Background(), professor.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProfessorHasCourses))

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, apperrors.CodeProfessorHasCourses, customErr.Code)
	assert.Equal(t, []int64{courseA.ID, courseB.ID}, customErr.Details["assignedCourses"])

	// The professor survives the failed delete.
	_, err = f.professors.GetProfessorByID(context.Background(), professor.ID)
	assert.NoError(t, err)
}

func TestDeleteProfessorWithoutCourses(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. Free", "free@example.com")

	require.NoError(t, f.professors.DeleteProfessor(context.Background(), professor.ID))

	_, err := f.professors.GetProfessorByID(context.Background(), professor.ID)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestGetTeachingSchedule(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. Sched", "sched@example.com")
	other := f.createProfessor(t, "Dr. Other", "other@example.com")
	f.createCourse(t, "CS101", 3, 30, professor.ID)
	f.createCourse(t, "MATH203", 4, 20, other.ID)

	schedule, err := f.professors.GetTeachingSchedule(context.Background(), professor.ID)
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "CS101", schedule[0].Code)

	_, err = f.professors.GetTeachingSchedule(context.Background(), 99)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
