package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCourseCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{"CS101", "CS101", true},
		{"cs101", "CS101", true},
		{" math203 ", "MATH203", true},
		{"AB999", "AB999", true},
		{"C101", "C101", false},      // too few letters
		{"TOOLS1011", "", false},     // too many digits
		{"ABCDE101", "", false},      // too many letters
		{"CS10", "", false},          // too few digits
		{"101CS", "", false},         // digits first
		{"CS 101", "", false},        // interior whitespace
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeCourseCode(tt.input)
		assert.Equal(t, tt.valid, ok, "input %q", tt.input)
		if tt.valid {
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestNormalizeGrade(t *testing.T) {
	for _, grade := range []string{"A", "B", "C", "D", "F"} {
		got, ok := NormalizeGrade(grade)
		assert.True(t, ok, "grade %q", grade)
		assert.Equal(t, grade, got)
	}

	got, ok := NormalizeGrade(" b ")
	assert.True(t, ok)
	assert.Equal(t, "B", got)

	for _, grade := range []string{"E", "G", "A+", "AB", "4", ""} {
		_, ok := NormalizeGrade(grade)
		assert.False(t, ok, "grade %q", grade)
	}
}
