package domain

import "strings"

var gradePoints = map[string]float64{
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D":  1.0,
	"F":  0.0,
}

// EditableGrades is every grade the backend accepts on a completed course,
// including the pass/fail marks that carry no points.
var EditableGrades = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F", "P", "NP"}

// PointsFor maps a letter grade to grade points. The bool is false for
// pass/fail marks, empty grades and anything unrecognised.
func PointsFor(grade string) (float64, bool) {
	points, ok := gradePoints[NormalizeGrade(grade)]
	return points, ok
}

func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

func IsEditableGrade(grade string) bool {
	normalized := NormalizeGrade(grade)
	for _, g := range EditableGrades {
		if g == normalized {
			return true
		}
	}
	return false
}
