// Package store holds the in-memory entity collections that back the
// academic records API. A single store instance owns every collection plus
// the per-collection id counters; all access goes through View/Update
// closures guarded by one lock, so each operation runs to completion before
// the next mutation is applied.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mert/unirecords/internal/app/models"
)

type state struct {
	professors  map[int64]models.Professor
	students    map[int64]models.Student
	courses     map[int64]models.Course
	enrollments map[string]models.Enrollment

	// Monotonic counters, never reused within a process lifetime.
	nextProfessorID  int64
	nextStudentID    int64
	nextCourseID     int64
	nextEnrollmentID int64
}

// Store owns the four entity collections. Safe for use from concurrent
// request handlers: mutations serialize behind an exclusive lock so that
// check-then-write sequences (capacity check + increment, uniqueness check +
// insert) stay atomic together.
type Store struct {
	mu    sync.RWMutex
	state state
}

// New creates an empty store with all counters starting at 1.
func New() *Store {
	return &Store{
		state: state{
			professors:       map[int64]models.Professor{},
			students:         map[int64]models.Student{},
			courses:          map[int64]models.Course{},
			enrollments:      map[string]models.Enrollment{},
			nextProfessorID:  1,
			nextStudentID:    1,
			nextCourseID:     1,
			nextEnrollmentID: 1,
		},
	}
}

// Tx is a view over the store state handed to View/Update closures. It must
// not be retained after the closure returns.
type Tx struct {
	s *state
}

// Update runs fn with exclusive access to the store. Closures are expected
// to validate every precondition before their first write; an error aborts
// the call but performs no rollback.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: &s.state})
}

// View runs fn with shared read access to the store.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: &s.state})
}

// --- Professors ---

// InsertProfessor assigns the next professor id and stores the record.
func (tx *Tx) InsertProfessor(p models.Professor) models.Professor {
	p.ID = tx.s.nextProfessorID
	tx.s.nextProfessorID++
	tx.s.professors[p.ID] = p
	return p
}

// Professor returns the professor with the given id.
func (tx *Tx) Professor(id int64) (models.Professor, bool) {
	p, ok := tx.s.professors[id]
	return p, ok
}

// PutProfessor overwrites an existing professor record.
func (tx *Tx) PutProfessor(p models.Professor) {
	tx.s.professors[p.ID] = p
}

// DeleteProfessor removes the professor record and reports whether it existed.
func (tx *Tx) DeleteProfessor(id int64) bool {
	if _, ok := tx.s.professors[id]; !ok {
		return false
	}
	delete(tx.s.professors, id)
	return true
}

// Professors returns all professors ordered by id for stable listing.
func (tx *Tx) Professors() []models.Professor {
	out := make([]models.Professor, 0, len(tx.s.professors))
	for _, p := range tx.s.professors {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Students ---

// InsertStudent assigns the next student id and stores the record.
func (tx *Tx) InsertStudent(st models.Student) models.Student {
	st.ID = tx.s.nextStudentID
	tx.s.nextStudentID++
	tx.s.students[st.ID] = st
	return st
}

// Student returns the student with the given id.
func (tx *Tx) Student(id int64) (models.Student, bool) {
	st, ok := tx.s.students[id]
	return st, ok
}

// PutStudent overwrites an existing student record.
func (tx *Tx) PutStudent(st models.Student) {
	tx.s.students[st.ID] = st
}

// DeleteStudent removes the student record and reports whether it existed.
func (tx *Tx) DeleteStudent(id int64) bool {
	if _, ok := tx.s.students[id]; !ok {
		return false
	}
	delete(tx.s.students, id)
	return true
}

// Students returns all students ordered by id for stable listing.
func (tx *Tx) Students() []models.Student {
	out := make([]models.Student, 0, len(tx.s.students))
	for _, st := range tx.s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Courses ---

// InsertCourse assigns the next course id and stores the record.
func (tx *Tx) InsertCourse(c models.Course) models.Course {
	c.ID = tx.s.nextCourseID
	tx.s.nextCourseID++
	tx.s.courses[c.ID] = c
	return c
}

// Course returns the course with the given id.
func (tx *Tx) Course(id int64) (models.Course, bool) {
	c, ok := tx.s.courses[id]
	return c, ok
}

// PutCourse overwrites an existing course record.
func (tx *Tx) PutCourse(c models.Course) {
	tx.s.courses[c.ID] = c
}

// DeleteCourse removes the course record and reports whether it existed.
func (tx *Tx) DeleteCourse(id int64) bool {
	if _, ok := tx.s.courses[id]; !ok {
		return false
	}
	delete(tx.s.courses, id)
	return true
}

// Courses returns all courses ordered by id for stable listing.
func (tx *Tx) Courses() []models.Course {
	out := make([]models.Course, 0, len(tx.s.courses))
	for _, c := range tx.s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CoursesByProfessor returns the courses owned by the given professor,
// ordered by id.
func (tx *Tx) CoursesByProfessor(professorID int64) []models.Course {
	out := []models.Course{}
	for _, c := range tx.s.courses {
		if c.ProfessorID == professorID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Enrollments ---

// InsertEnrollment assigns the next enrollment token and stores the record.
func (tx *Tx) InsertEnrollment(e models.Enrollment) models.Enrollment {
	e.ID = fmt.Sprintf("ENR%d", tx.s.nextEnrollmentID)
	tx.s.nextEnrollmentID++
	tx.s.enrollments[e.ID] = e
	return e
}

// Enrollment returns the enrollment with the given token.
func (tx *Tx) Enrollment(id string) (models.Enrollment, bool) {
	e, ok := tx.s.enrollments[id]
	return e, ok
}

// EnrollmentByPair returns the live enrollment linking the student and
// course, if any. At most one such record exists at any time.
func (tx *Tx) EnrollmentByPair(studentID, courseID int64) (models.Enrollment, bool) {
	for _, e := range tx.s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, true
		}
	}
	return models.Enrollment{}, false
}

// PutEnrollment overwrites an existing enrollment record.
func (tx *Tx) PutEnrollment(e models.Enrollment) {
	tx.s.enrollments[e.ID] = e
}

// DeleteEnrollment removes the enrollment record and reports whether it
// existed.
func (tx *Tx) DeleteEnrollment(id string) bool {
	if _, ok := tx.s.enrollments[id]; !ok {
		return false
	}
	delete(tx.s.enrollments, id)
	return true
}

// Enrollments returns all enrollments in token order.
func (tx *Tx) Enrollments() []models.Enrollment {
	out := make([]models.Enrollment, 0, len(tx.s.enrollments))
	for _, e := range tx.s.enrollments {
		out = append(out, e)
	}
	sortEnrollments(out)
	return out
}

// EnrollmentsByStudent returns the student's enrollments in token order.
func (tx *Tx) EnrollmentsByStudent(studentID int64) []models.Enrollment {
	out := []models.Enrollment{}
	for _, e := range tx.s.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	sortEnrollments(out)
	return out
}

// EnrollmentsByCourse returns the course's enrollments in token order.
func (tx *Tx) EnrollmentsByCourse(courseID int64) []models.Enrollment {
	out := []models.Enrollment{}
	for _, e := range tx.s.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	sortEnrollments(out)
	return out
}

// Tokens share the "ENR" prefix, so shorter-then-lexicographic ordering is
// numeric ordering.
func sortEnrollments(list []models.Enrollment) {
	sort.Slice(list, func(i, j int) bool {
		if len(list[i].ID) != len(list[j].ID) {
			return len(list[i].ID) < len(list[j].ID)
		}
		return list[i].ID < list[j].ID
	})
}
