package final

import (
	scheduledto "planwise/internal/modules/schedule/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
	scheduleview "planwise/internal/ui/views/schedule"
)

func Render(out scheduledto.ScheduleOutput, err error, width int) string {
	title := theme.Title.Render("Final schedule") + "\n"
	if err != nil {
		return title + components.Empty("Error loading final schedule: " + err.Error())
	}
	if len(out.Sections) == 0 {
		return title + components.Empty("No classes chosen yet.")
	}
	return title + components.Table(scheduleview.Headers, scheduleview.Rows(out.Sections), width)
}
