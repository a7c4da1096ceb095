package advisors

import (
	catalogdto "planwise/internal/modules/catalog/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

func Render(items []catalogdto.AdvisorOutput, err error, width int) string {
	title := theme.Title.Render("Advisors") + "\n"
	if err != nil {
		return title + components.Empty("Error loading advisors.")
	}
	if len(items) == 0 {
		return title + components.Empty("No advisors found.")
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{a.Name, a.Email})
	}
	return title + components.Table([]string{"Name", "Email"}, rows, width)
}
