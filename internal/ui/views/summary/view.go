package summary

import (
	"fmt"

	historydto "planwise/internal/modules/history/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
)

func Render(s historydto.SummaryOutput, err error) string {
	if err != nil {
		return components.Empty("Summary unavailable: " + err.Error())
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		theme.Muted.Render("Credits"), theme.Hot.Render(components.Credits(s.TotalCredits)),
		theme.Muted.Render("GPA"), theme.Hot.Render(s.GPAText),
		theme.Muted.Render("Standing"), theme.Hot.Render(s.Standing),
	)
}
