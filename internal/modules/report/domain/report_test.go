package domain

import (
	"strings"
	"testing"
	"time"
)

func sample() Report {
	return Report{
		StudentID:   12,
		PlanID:      3,
		LoginID:     "Abc 123",
		Name:        "New Student",
		Summary:     Summary{Credits: 7, GPAText: "3.60", Standing: "Freshman"},
		PlanCredits: 7,
		Plan: []PlanRow{
			{TermCode: "FA24", CourseCode: "CMPSC 131", Title: "Programming | Lab", Credits: 3, Recommended: true},
			{TermCode: "FA24", CourseCode: "MATH 140", Title: "Calculus", Credits: 4},
		},
		Schedule:    []ScheduleRow{{CourseCode: "MATH 140", Title: "Calculus", Days: "Tue, Thu", Time: "10:10–11:00", Location: "Thomas 102"}},
		GeneratedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	if got := sample().FileName(); got != "planwise-abc-123.md" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := (Report{StudentID: 9}).FileName(); got != "planwise-student-9.md" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestBodyTables(t *testing.T) {
	t.Parallel()
	body := sample().Body()
	for _, want := range []string{
		"# Academic plan: New Student",
		"- GPA: 3.60",
		"## Plan (7 credits)",
		`| FA24 | CMPSC 131 | Programming \| Lab | 3 | Yes |`,
		"| MATH 140 | Calculus | Tue, Thu | 10:10–11:00 | Thomas 102 |",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBodyEmptyStates(t *testing.T) {
	t.Parallel()
	r := Report{Summary: Summary{GPAText: "0.00", Standing: "Freshman"}, PlanSkipped: true, Unavailable: []string{"final schedule: HTTP 500"}}
	body := r.Body()
	for _, want := range []string{"No active plan.", "No classes chosen yet.", "- final schedule: HTTP 500"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestFrontmatter(t *testing.T) {
	t.Parallel()
	meta := sample().Frontmatter()
	if meta["stu_id"] != int64(12) || meta["gpa"] != "3.60" || meta["generated_at"] != "2026-09-01T10:00:00Z" {
		t.Fatalf("unexpected frontmatter: %v", meta)
	}
}
