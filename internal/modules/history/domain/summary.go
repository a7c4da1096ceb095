package domain

import "fmt"

type Standing string

const (
	StandingFreshman  Standing = "Freshman"
	StandingSophomore Standing = "Sophomore"
	StandingJunior    Standing = "Junior"
	StandingSenior    Standing = "Senior"
)

// CompletedCourse is one row of a student's course history.
type CompletedCourse struct {
	EnrollID int64
	CourseID int64
	Subject  string
	CataNum  string
	Title    string
	Credits  float64
	Grade    string
	TermCode string
	ClassNum string
}

func (c CompletedCourse) Code() string {
	return c.Subject + " " + c.CataNum
}

type Summary struct {
	TotalCredits float64
	GPA          float64
	Standing     Standing
}

func (s Summary) GPAText() string {
	return fmt.Sprintf("%.2f", s.GPA)
}

// Summarize counts only records with a graded letter and positive credits.
// Standing is derived from the same unrounded credit total.
func Summarize(records []CompletedCourse) Summary {
	credits := 0.0
	quality := 0.0
	for _, r := range records {
		points, ok := PointsFor(r.Grade)
		if !ok || r.Credits <= 0 {
			continue
		}
		credits += r.Credits
		quality += points * r.Credits
	}
	gpa := 0.0
	if credits > 0 {
		gpa = quality / credits
	}
	return Summary{TotalCredits: credits, GPA: gpa, Standing: StandingFromCredits(credits)}
}

func StandingFromCredits(credits float64) Standing {
	switch {
	case credits >= 90:
		return StandingSenior
	case credits >= 60:
		return StandingJunior
	case credits >= 30:
		return StandingSophomore
	default:
		return StandingFreshman
	}
}
