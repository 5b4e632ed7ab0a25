package dto

// GPADistribution buckets students into the five GPA bands. "Not Graded"
// counts students whose GPA is zero and who have no graded enrollment at
// all, which is distinct from a student who earned a 0.0.
type GPADistribution struct {
	Band00to099 int `json:"0.0-0.99"`
	Band10to199 int `json:"1.0-1.99"`
	Band20to299 int `json:"2.0-2.99"`
	Band30to40  int `json:"3.0-4.0"`
	NotGraded   int `json:"Not Graded"`
}

// CourseEnrollmentStats summarizes enrollment counts across all courses.
type CourseEnrollmentStats struct {
	TotalCourses               int     `json:"totalCourses" example:"4"`
	TotalEnrollment            int     `json:"totalEnrollment" example:"57"`
	AverageEnrollmentPerCourse float64 `json:"averageEnrollmentPerCourse" example:"14.25"`
	MinEnrollment              int     `json:"minEnrollment" example:"3"`
	MaxEnrollment              int     `json:"maxEnrollment" example:"30"`
}
