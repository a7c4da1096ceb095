package recommendations

import (
	"fmt"
	"strings"

	plandto "planwise/internal/modules/plan/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

const emptyText = "No recommendations. You may have satisfied all core courses or need to mark more completed."

func Render(items []plandto.CourseOutput, err error) string {
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Recommended next") + "\n")
	switch {
	case err != nil:
		b.WriteString(components.Empty("Error loading recommendations: " + err.Error()))
	case len(items) == 0:
		b.WriteString(components.Empty(emptyText))
	default:
		for _, c := range items {
			fmt.Fprintf(&b, "%s · %s\n", theme.Hot.Render(c.Code), c.Title)
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  id %d · %s credits", c.ID, components.Credits(c.Credits))) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
