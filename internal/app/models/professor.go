package models

// Professor defines a faculty member who can own courses.
type Professor struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Dr. Grace Hopper"`
	Email      string `json:"email" example:"grace.hopper@yale.edu"` // Unique across professors and students
	Department string `json:"department" example:"Computer Science"`
	HireDate   Date   `json:"hireDate" example:"1959-01-01"` // Must not be in the future
}
