package schedule

import (
	"fmt"
	"strings"

	scheduledto "planwise/internal/modules/schedule/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

// Rows turns aggregated sections into table rows; final schedules share it.
func Rows(sections []scheduledto.SectionOutput) [][]string {
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{components.ID(s.SectionID), s.CourseCode, s.Title, s.DaysText, s.TimeText, s.Location})
	}
	return rows
}

var Headers = []string{"Section", "Course", "Title", "Day(s)", "Time", "Location"}

func Render(out scheduledto.ScheduleOutput, err error, width int) string {
	title := theme.Title.Render("Available sections") + "\n"
	if err != nil {
		return title + components.Empty("Error loading schedule: " + err.Error())
	}
	if len(out.Sections) == 0 {
		return title + components.Empty("No available schedule times found for your planned courses.")
	}
	body := title + components.Table(Headers, Rows(out.Sections), width)
	if len(out.Warnings) > 0 {
		body += "\n" + theme.Hot.Render(fmt.Sprintf("%d inconsistent meeting row(s)", len(out.Warnings)))
		for _, w := range out.Warnings {
			body += "\n" + theme.Muted.Render("  "+w)
		}
	}
	return body
}

// Conflicts lists overlapping meetings. A nil slice means none were asked for.
func Conflicts(items []scheduledto.ConflictOutput, err error) string {
	if items == nil && err == nil {
		return ""
	}
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Time conflicts") + "\n")
	switch {
	case err != nil:
		b.WriteString(components.Empty("Error loading conflicts: " + err.Error()))
	case len(items) == 0:
		b.WriteString(components.Empty("No overlapping sections."))
	default:
		for _, c := range items {
			fmt.Fprintf(&b, "%s section %d (%s) overlaps section %d (%s)\n", c.Day, c.SectionA, c.ATimeText, c.SectionB, c.BTimeText)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
