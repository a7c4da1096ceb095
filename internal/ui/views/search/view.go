package search

import (
	"fmt"
	"strings"

	catalogdto "planwise/internal/modules/catalog/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

// Render lists search results. Nothing is drawn before the first search.
func Render(query string, items []catalogdto.CourseOutput, err error) string {
	if query == "" && err == nil {
		return ""
	}
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Search") + theme.Muted.Render("  "+query) + "\n")
	switch {
	case err != nil:
		b.WriteString(components.Empty(err.Error()))
	case len(items) == 0:
		b.WriteString(components.Empty("No courses match."))
	default:
		for _, c := range items {
			fmt.Fprintf(&b, "%s · %s\n", theme.Hot.Render(c.Code), c.Title)
			b.WriteString(theme.Muted.Render(fmt.Sprintf("  id %d · %s credits", c.ID, components.Credits(c.Credits))) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
