package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/unirecords/internal/app/models/dto"
)

func TestGPADistributionBands(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. P", "p@example.com")
	course := f.createCourse(t, "CS101", 3, 30, professor.ID)

	grades := map[string]string{
		"f@example.com": "F", // 0.0, lands in the lowest band
		"d@example.com": "D", // 1.0
		"c@example.com": "C", // 2.0
		"a@example.com": "A", // 4.0
	}
	for email, grade := range grades {
		student := f.createStudent(t, "Student "+grade, email)
		f.enroll(t, student.ID, course.ID)
		f.grade(t, student.ID, course.ID, grade)
	}
	// Enrolled but never graded.
	f.createStudent(t, "Fresh", "fresh@example.com")

	distribution, err := f.analytics.GetGPADistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.GPADistribution{
		Band00to099: 1,
		Band10to199: 1,
		Band20to299: 1,
		Band30to40:  1,
		NotGraded:   1,
	}, distribution)
}

func TestGPADistributionZeroGPADistinctFromNotGraded(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. P", "p@example.com")
	course := f.createCourse(t, "CS101", 3, 30, professor.ID)

	// An earned 0.0 counts in the lowest band, not "Not Graded".
	failed := f.createStudent(t, "Failed", "failed@example.com")
	f.enroll(t, failed.ID, course.ID)
	f.grade(t, failed.ID, course.ID, "F")

	ungraded := f.createStudent(t, "Ungraded", "ungraded@example.com")
	f.enroll(t, ungraded.ID, course.ID)

	distribution, err := f.analytics.GetGPADistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, distribution.Band00to099)
	assert.Equal(t, 1, distribution.NotGraded)
}

func TestGPADistributionEmptyStore(t *testing.T) {
	f := newFixture(t)

	distribution, err := f.analytics.GetGPADistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.GPADistribution{}, distribution)
}

func TestCourseEnrollmentStats(t *testing.T) {
	f := newFixture(t)
	professor := f.createProfessor(t, "Dr. P", "p@example.com")
	empty := f.createCourse(t, "CS101", 3, 30, professor.ID)
	busy := f.createCourse(t, "CS201", 4, 30, professor.ID)
	f.createCourse(t, "CS301", 3, 30, professor.ID)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		student := f.createStudent(t, "S", email)
		f.enroll(t, student.ID, busy.ID)
		if i == 0 {
			f.enroll(t, student.ID, empty.ID)
		}
	}

	stats, err := f.analytics.GetCourseEnrollmentStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CourseEnrollmentStats{
		TotalCourses:               3,
		TotalEnrollment:            4,
		AverageEnrollmentPerCourse: 1.33,
		MinEnrollment:              0,
		MaxEnrollment:              3,
	}, stats)
}

func TestCourseEnrollmentStatsEmptyStore(t *testing.T) {
	f := newFixture(t)

	stats, err := f.analytics.GetCourseEnrollmentStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CourseEnrollmentStats{}, stats)
}
