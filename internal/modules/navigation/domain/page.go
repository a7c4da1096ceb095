package domain

import "strings"

type Page string

const (
	PageHome     Page = "home"
	PagePlan     Page = "plan"
	PageHistory  Page = "history"
	PageSchedule Page = "schedule"
	PageFinal    Page = "final"
)

// Pages lists every page in tab order.
func Pages() []Page {
	return []Page{PageHome, PagePlan, PageHistory, PageSchedule, PageFinal}
}

func (p Page) Path() string {
	if p == PageHome {
		return "/"
	}
	return "/" + string(p)
}

func (p Page) Title() string {
	switch p {
	case PagePlan:
		return "Plan"
	case PageHistory:
		return "History"
	case PageSchedule:
		return "Schedule"
	case PageFinal:
		return "Final"
	default:
		return "Home"
	}
}

// ResolvePage maps a navigated path to its page. Unknown paths, "/" and
// "/home" all resolve to the home page.
func ResolvePage(path string) Page {
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	switch path {
	case "/plan":
		return PagePlan
	case "/history":
		return PageHistory
	case "/schedule":
		return PageSchedule
	case "/final":
		return PageFinal
	default:
		return PageHome
	}
}
