package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/unirecords/internal/app/models"
)

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	st := New()

	var first, second models.Professor
	err := st.Update(func(tx *Tx) error {
		first = tx.InsertProfessor(models.Professor{Name: "Ada", Email: "ada@example.com"})
		second = tx.InsertProfessor(models.Professor{Name: "Grace", Email: "grace@example.com"})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestIDsAreNeverReused(t *testing.T) {
	st := New()

	err := st.Update(func(tx *Tx) error {
		s := tx.InsertStudent(models.Student{Name: "A", Email: "a@example.com"})
		assert.True(t, tx.DeleteStudent(s.ID))
		next := tx.InsertStudent(models.Student{Name: "B", Email: "b@example.com"})
		assert.Equal(t, int64(2), next.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestEnrollmentTokensAreSequential(t *testing.T) {
	st := New()

	err := st.Update(func(tx *Tx) error {
		e1 := tx.InsertEnrollment(models.Enrollment{StudentID: 1, CourseID: 1})
		e2 := tx.InsertEnrollment(models.Enrollment{StudentID: 1, CourseID: 2})
		assert.Equal(t, "ENR1", e1.ID)
		assert.Equal(t, "ENR2", e2.ID)

		assert.True(t, tx.DeleteEnrollment(e1.ID))
		e3 := tx.InsertEnrollment(models.Enrollment{StudentID: 2, CourseID: 1})
		assert.Equal(t, "ENR3", e3.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestEnrollmentByPair(t *testing.T) {
	st := New()

	err := st.Update(func(tx *Tx) error {
		tx.InsertEnrollment(models.Enrollment{StudentID: 7, CourseID: 3})
		tx.InsertEnrollment(models.Enrollment{StudentID: 7, CourseID: 4})

		found, ok := tx.EnrollmentByPair(7, 4)
		require.True(t, ok)
		assert.Equal(t, int64(4), found.CourseID)

		_, ok = tx.EnrollmentByPair(8, 3)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestListingsAreOrderedByID(t *testing.T) {
	st := New()

	err := st.Update(func(tx *Tx) error {
		for i := 0; i < 12; i++ {
			tx.InsertCourse(models.Course{Name: "Course", Code: "CS101"})
			tx.InsertEnrollment(models.Enrollment{StudentID: int64(i + 1), CourseID: 1})
		}
		return nil
	})
	require.NoError(t, err)

	err = st.View(func(tx *Tx) error {
		courses := tx.Courses()
		require.Len(t, courses, 12)
		for i, c := range courses {
			assert.Equal(t, int64(i+1), c.ID)
		}

		// Token order must be numeric: ENR10 sorts after ENR9.
		enrollments := tx.Enrollments()
		require.Len(t, enrollments, 12)
		assert.Equal(t, "ENR9", enrollments[8].ID)
		assert.Equal(t, "ENR10", enrollments[9].ID)
		return nil
	})
	require.NoError(t, err)
}

func TestCoursesByProfessor(t *testing.T) {
	st := New()

	err := st.Update(func(tx *Tx) error {
		tx.InsertCourse(models.Course{Name: "Algorithms", Code: "CS201", ProfessorID: 1})
		tx.InsertCourse(models.Course{Name: "Calculus", Code: "MATH101", ProfessorID: 2})
		tx.InsertCourse(models.Course{Name: "Compilers", Code: "CS432", ProfessorID: 1})
		return nil
	})
	require.NoError(t, err)

	err = st.View(func(tx *Tx) error {
		owned := tx.CoursesByProfessor(1)
		require.Len(t, owned, 2)
		assert.Equal(t, "CS201", owned[0].Code)
		assert.Equal(t, "CS432", owned[1].Code)
		assert.Empty(t, tx.CoursesByProfessor(99))
		return nil
	})
	require.NoError(t, err)
}
