package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
)

// fixture bundles every service over one shared store so tests can exercise
// cross-entity behavior.
type fixture struct {
	store       *store.Store
	professors  *ProfessorService
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
	analytics   *AnalyticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New()
	return &fixture{
		store:       st,
		professors:  NewProfessorService(st),
		students:    NewStudentService(st),
		courses:     NewCourseService(st),
		enrollments: NewEnrollmentService(st),
		analytics:   NewAnalyticsService(st),
	}
}

func (f *fixture) createProfessor(t *testing.T, name, email string) models.Professor {
	t.Helper()
	professor, err := f.professors.CreateProfessor(context.Background(), dto.CreateProfessorRequest{
		Name:       name,
		Email:      email,
		Department: "Computer Science",
		HireDate:   models.NewDate(2010, time.September, 1),
	})
	require.NoError(t, err)
	return professor
}

func (f *fixture) createStudent(t *testing.T, name, email string) models.Student {
	t.Helper()
	student, err := f.students.CreateStudent(context.Background(), dto.CreateStudentRequest{
		Name:  name,
		Email: email,
		Major: "Mathematics",
		Year:  2,
	})
	require.NoError(t, err)
	return student
}

func (f *fixture) createCourse(t *testing.T, code string, credits, capacity int, professorID int64) models.Course {
	t.Helper()
	course, err := f.courses.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name:        "Course " + code,
		Code:        code,
		Credits:     credits,
		MaxCapacity: capacity,
		ProfessorID: professorID,
	})
	require.NoError(t, err)
	return course
}

func (f *fixture) enroll(t *testing.T, studentID, courseID int64) dto.EnrollmentConfirmation {
	t.Helper()
	confirmation, err := f.enrollments.Enroll(context.Background(), dto.CreateEnrollmentRequest{
		StudentID: studentID,
		CourseID:  courseID,
	})
	require.NoError(t, err)
	return confirmation
}

func (f *fixture) grade(t *testing.T, studentID, courseID int64, grade string) models.Enrollment {
	t.Helper()
	enrollment, err := f.enrollments.Grade(context.Background(), studentID, courseID, grade)
	require.NoError(t, err)
	return enrollment
}

func (f *fixture) student(t *testing.T, id int64) models.Student {
	t.Helper()
	student, err := f.students.GetStudentByID(context.Background(), id)
	require.NoError(t, err)
	return student
}

func (f *fixture) course(t *testing.T, id int64) models.Course {
	t.Helper()
	course, err := f.courses.GetCourseByID(context.Background(), id)
	require.NoError(t, err)
	return course
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
