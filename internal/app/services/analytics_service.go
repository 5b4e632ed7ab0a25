package services

import (
	"context"
	"math"

	"github.com/mert/unirecords/internal/app/models/dto"
	"github.com/mert/unirecords/internal/app/store"
)

// AnalyticsService computes derived, read-only views over the store. Nothing
// is cached; every call recomputes from the live collections.
type AnalyticsService struct {
	store *store.Store
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// GetGPADistribution buckets every student into one of the five GPA bands.
// A student lands in "Not Graded" only when the GPA is zero and none of the
// student's enrollments carries a grade.
func (s *AnalyticsService) GetGPADistribution(ctx context.Context) (dto.GPADistribution, error) {
	var distribution dto.GPADistribution
	err := s.store.View(func(tx *store.Tx) error {
		for _, student := range tx.Students() {
			if student.GPA == 0 && !hasGradedEnrollment(tx, student.ID) {
				distribution.NotGraded++
				continue
			}
			switch {
			case student.GPA < 1.0:
				distribution.Band00to099++
			case student.GPA < 2.0:
				distribution.Band10to199++
			case student.GPA < 3.0:
				distribution.Band20to299++
			case student.GPA <= 4.0:
				distribution.Band30to40++
			}
		}
		return nil
	})
	return distribution, err
}

// GetCourseEnrollmentStats summarizes enrolled counts across all courses.
// With no courses every field is zero.
func (s *AnalyticsService) GetCourseEnrollmentStats(ctx context.Context) (dto.CourseEnrollmentStats, error) {
	var stats dto.CourseEnrollmentStats
	err := s.store.View(func(tx *store.Tx) error {
		courses := tx.Courses()
		if len(courses) == 0 {
			return nil
		}
		stats.TotalCourses = len(courses)
		stats.MinEnrollment = courses[0].EnrolledStudents
		for _, c := range courses {
			stats.TotalEnrollment += c.EnrolledStudents
			if c.EnrolledStudents < stats.MinEnrollment {
				stats.MinEnrollment = c.EnrolledStudents
			}
			if c.EnrolledStudents > stats.MaxEnrollment {
				stats.MaxEnrollment = c.EnrolledStudents
			}
		}
		average := float64(stats.TotalEnrollment) / float64(stats.TotalCourses)
		stats.AverageEnrollmentPerCourse = math.Round(average*100) / 100
		return nil
	})
	return stats, err
}

func hasGradedEnrollment(tx *store.Tx, studentID int64) bool {
	for _, e := range tx.EnrollmentsByStudent(studentID) {
		if e.Graded() {
			return true
		}
	}
	return false
}
