package plan

import (
	"fmt"

	plandto "planwise/internal/modules/plan/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

const emptyText = "No courses in this plan yet. Use search to add one."

// Render draws the plan table. Item ids are shown so they can be passed to
// the remove command.
func Render(plan plandto.PlanOutput, err error, width int) string {
	if err != nil {
		return components.Empty("Error loading plan: " + err.Error())
	}
	meta := theme.Title.Render(fmt.Sprintf("Plan %d · Total credits %s", plan.PlanID, components.Credits(plan.TotalCredits)))
	if len(plan.Items) == 0 {
		return meta + "\n" + components.Empty(emptyText)
	}
	rows := make([][]string, 0, len(plan.Items))
	for _, item := range plan.Items {
		rec := "No"
		if item.Recommended {
			rec = "Yes"
		}
		rows = append(rows, []string{components.ID(item.PCID), rec, item.TermCode, item.CourseCode, item.Title, components.Credits(item.Credits)})
	}
	return meta + "\n" + components.Table([]string{"ID", "Rec", "Term", "Course", "Title", "Credits"}, rows, width)
}
