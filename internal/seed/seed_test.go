package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mert/unirecords/internal/app/store"
)

func TestCreateDefaultData(t *testing.T) {
	st := store.New()
	require.NoError(t, CreateDefaultData(st, zerolog.Nop()))

	err := st.View(func(tx *store.Tx) error {
		require.Len(t, tx.Professors(), 1)
		require.Len(t, tx.Students(), 1)
		require.Len(t, tx.Courses(), 1)
		require.Len(t, tx.Enrollments(), 1)

		course := tx.Courses()[0]
		assert.Equal(t, "CS101", course.Code)
		// The seeded enrollment is reflected in the count.
		assert.Equal(t, 1, course.EnrolledStudents)

		enrollment := tx.Enrollments()[0]
		assert.Equal(t, tx.Students()[0].ID, enrollment.StudentID)
		assert.Equal(t, course.ID, enrollment.CourseID)
		return nil
	})
	require.NoError(t, err)
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	st := store.New()
	require.NoError(t, CreateDefaultData(st, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(st, zerolog.Nop()))

	err := st.View(func(tx *store.Tx) error {
		assert.Len(t, tx.Professors(), 1)
		assert.Len(t, tx.Enrollments(), 1)
		return nil
	})
	require.NoError(t, err)
}
