package plan

import (
	"fmt"
	"strings"

	plugindto "planwise/internal/modules/plugin/dto"
	"planwise/internal/ui/theme"
)

// Findings lists the result of the last plan audit. nil means no audit ran.
func Findings(source string, items []plugindto.Finding) string {
	if items == nil {
		return ""
	}
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Audit") + theme.Muted.Render("  "+source) + "\n")
	if len(items) == 0 {
		b.WriteString(theme.Muted.Render("No findings."))
		return b.String()
	}
	for _, f := range items {
		var sev string
		switch f.Severity {
		case "error":
			sev = theme.Alert.Render(f.Severity)
		case "warn":
			sev = theme.Hot.Render(f.Severity)
		default:
			sev = theme.Muted.Render(f.Severity)
		}
		where := strings.TrimSpace(f.TermCode + " " + f.CourseCode)
		if where != "" {
			where += ": "
		}
		fmt.Fprintf(&b, "%s %s%s\n", sev, where, f.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}
