package seed

import (
	"time"

	appModels "github.com/mert/unirecords/internal/app/models"
	"github.com/mert/unirecords/internal/app/store"
	"github.com/rs/zerolog"
)

// CreateDefaultData populates an empty store with a small starter data set:
// one professor, one student, one course and one enrollment linking them.
// A store that already holds professors is left untouched so restarts with
// an injected store stay idempotent.
func CreateDefaultData(st *store.Store, lgr zerolog.Logger) error {
	return st.Update(func(tx *store.Tx) error {
		if len(tx.Professors()) > 0 {
			lgr.Info().Msg("Store already seeded, skipping default data")
			return nil
		}

		professor := tx.InsertProfessor(appModels.Professor{
			Name:       "Dr. Alan Turing",
			Email:      "alan.turing@bletchleypark.edu",
			Department: "Computer Science",
			HireDate:   appModels.NewDate(1936, time.September, 30),
		})

		student := tx.InsertStudent(appModels.Student{
			Name:  "Joan Clarke",
			Email: "joan.clarke@example.com",
			Major: "Mathematics",
			Year:  2,
		})

		course := tx.InsertCourse(appModels.Course{
			Name:             "Introduction to Cryptography",
			Code:             "CS101",
			Credits:          3,
			MaxCapacity:      30,
			ProfessorID:      professor.ID,
			EnrolledStudents: 1,
		})

		enrollment := tx.InsertEnrollment(appModels.Enrollment{
			StudentID:      student.ID,
			CourseID:       course.ID,
			EnrollmentDate: appModels.Today(),
		})

		lgr.Info().
			Int64("professorId", professor.ID).
			Int64("studentId", student.ID).
			Int64("courseId", course.ID).
			Str("enrollmentId", enrollment.ID).
			Msg("Default data created")
		return nil
	})
}
