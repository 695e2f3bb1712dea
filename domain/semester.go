package domain

import (
	"fmt"
	"strings"
	"time"
)

// Semester labels the two halves of an academic year. The stored form is the
// canonical capitalised label; parsing is case-insensitive.
type Semester string

const (
	SemesterGanjil Semester = "Ganjil" // July-December of the academic year
	SemesterGenap  Semester = "Genap"  // January-June of the following calendar year
)

func ParseSemester(s string) (Semester, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ganjil":
		return SemesterGanjil, nil
	case "genap":
		return SemesterGenap, nil
	}
	return "", fmt.Errorf("unknown semester %q: %w", s, ErrValidation)
}

// SemesterWindow returns the half-open [from, to) date range an attendance
// entry must fall in to count toward the given academic year and semester.
func SemesterWindow(academicYear int, semester Semester) (time.Time, time.Time) {
	if semester == SemesterGanjil {
		return time.Date(academicYear, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(academicYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(academicYear+1, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(academicYear+1, time.July, 1, 0, 0, 0, 0, time.UTC)
}
