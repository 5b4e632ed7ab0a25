package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Course code pattern - 2-4 uppercase letters followed by 3 digits
	CourseCodePattern = `^[A-Z]{2,4}[0-9]{3}$`

	// Letter grade pattern - A, B, C, D or F
	GradePattern = `^[A-DF]$`

	// Numeric field bounds
	CreditsMin     = 1
	CreditsMax     = 6
	YearMin        = 1
	YearMax        = 5
	MaxCapacityMin = 1
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
	Grade      *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
	Grade:      regexp.MustCompile(GradePattern),
}

// NormalizeCourseCode uppercases the code and reports whether the result is a
// valid course code such as "CS101" or "MATH203".
func NormalizeCourseCode(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	return normalized, CompiledPatterns.CourseCode.MatchString(normalized)
}

// NormalizeGrade uppercases the grade and reports whether the result is one
// of the letter grades A-D or F.
func NormalizeGrade(grade string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(grade))
	return normalized, CompiledPatterns.Grade.MatchString(normalized)
}
