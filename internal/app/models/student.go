package models

// Student defines the student model.
type Student struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"John von Neumann"`
	Email string `json:"email" example:"john.vonneumann@ias.edu"` // Globally unique
	Major string `json:"major" example:"Chemical Engineering"`
	Year  int    `json:"year" example:"4"` // 1-5

	// Derived fields, maintained by the GPA engine.
	GPA               float64 `json:"gpa" example:"3.43"`
	AcademicProbation bool    `json:"academicProbation" example:"false"` // True iff GPA < 2.0
}
