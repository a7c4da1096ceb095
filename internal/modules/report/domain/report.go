package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"planwise/internal/platform/slug"
)

const (
	ManagedStart = "<!-- planwise:report:start -->"
	ManagedEnd   = "<!-- planwise:report:end -->"
)

type PlanRow struct {
	TermCode    string
	CourseCode  string
	Title       string
	Credits     float64
	Recommended bool
}

type ScheduleRow struct {
	CourseCode string
	Title      string
	Days       string
	Time       string
	Location   string
}

type Summary struct {
	Credits  float64
	GPAText  string
	Standing string
}

type Report struct {
	StudentID   int64
	PlanID      int64
	LoginID     string
	Name        string
	Summary     Summary
	PlanCredits float64
	Plan        []PlanRow
	PlanSkipped bool
	Schedule    []ScheduleRow
	GeneratedAt time.Time
	// Unavailable lists the parts that could not be loaded.
	Unavailable []string
}

// FileName is planwise-<login>.md, falling back to the student id.
func (r Report) FileName() string {
	key := strings.TrimSpace(r.LoginID)
	if key == "" {
		key = "student-" + strconv.FormatInt(r.StudentID, 10)
	}
	return "planwise-" + slug.Make(key) + ".md"
}

func (r Report) Frontmatter() map[string]any {
	return map[string]any{
		"stu_id":       r.StudentID,
		"plan_id":      r.PlanID,
		"credits":      r.Summary.Credits,
		"gpa":          r.Summary.GPAText,
		"standing":     r.Summary.Standing,
		"generated_at": r.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

// Body renders the generated part of the note.
func (r Report) Body() string {
	b := strings.Builder{}
	title := "Academic plan"
	if r.Name != "" {
		title += ": " + r.Name
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Credits: %s\n", Credits(r.Summary.Credits))
	fmt.Fprintf(&b, "- GPA: %s\n", r.Summary.GPAText)
	fmt.Fprintf(&b, "- Standing: %s\n\n", r.Summary.Standing)

	fmt.Fprintf(&b, "## Plan (%s credits)\n\n", Credits(r.PlanCredits))
	switch {
	case r.PlanSkipped:
		b.WriteString("No active plan.\n\n")
	case len(r.Plan) == 0:
		b.WriteString("No courses in this plan yet.\n\n")
	default:
		b.WriteString("| Term | Course | Title | Credits | Recommended |\n|---|---|---|---|---|\n")
		for _, row := range r.Plan {
			rec := "No"
			if row.Recommended {
				rec = "Yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", cell(row.TermCode), cell(row.CourseCode), cell(row.Title), Credits(row.Credits), rec)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Final schedule\n\n")
	if len(r.Schedule) == 0 {
		b.WriteString("No classes chosen yet.\n")
	} else {
		b.WriteString("| Course | Title | Days | Time | Location |\n|---|---|---|---|---|\n")
		for _, row := range r.Schedule {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", cell(row.CourseCode), cell(row.Title), cell(row.Days), cell(row.Time), cell(row.Location))
		}
	}

	if len(r.Unavailable) > 0 {
		b.WriteString("\n## Not included\n\n")
		for _, msg := range r.Unavailable {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
	}
	return b.String()
}

// Credits prints whole credit counts without decimals.
func Credits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
