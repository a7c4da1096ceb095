package history

import (
	historydto "planwise/internal/modules/history/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

func Render(items []historydto.CompletedCourseOutput, err error, width int) string {
	title := theme.Title.Render("Completed courses") + "\n"
	if err != nil {
		return title + components.Empty("Error loading history: " + err.Error())
	}
	if len(items) == 0 {
		return title + components.Empty("No completed courses recorded yet.")
	}
	rows := make([][]string, 0, len(items))
	for _, h := range items {
		grade := h.Grade
		if grade == "" {
			grade = "-"
		}
		rows = append(rows, []string{components.ID(h.EnrollID), h.TermCode, h.Code, h.Title, components.Credits(h.Credits), grade})
	}
	return title + components.Table([]string{"ID", "Term", "Course", "Title", "Credits", "Grade"}, rows, width)
}
