package domain

type Loader string

const (
	LoaderPlanItems       Loader = "plan-items"
	LoaderRecommendations Loader = "recommendations"
	LoaderSummary         Loader = "summary"
	LoaderAdvisors        Loader = "advisors"
	LoaderHistory         Loader = "history"
	LoaderAvailable       Loader = "available-sections"
	LoaderFinalSchedule   Loader = "final-schedule"
)

// State is what page loading needs to know about the session.
type State struct {
	StudentID int64
	PlanID    int64
}

// LoadersFor returns the loads a page issues for the given state. A page
// whose required ids are missing loads nothing. The result depends only on
// its inputs.
//
// The history loader ends with a summary refresh of the history page, and
// the available-sections loader is followed by a final-schedule load even
// when it fails; those follow-ups belong to the loaders themselves.
func LoadersFor(page Page, state State) []Loader {
	hasStudent := state.StudentID > 0
	hasPlan := state.PlanID > 0
	switch page {
	case PagePlan:
		if hasStudent && hasPlan {
			return []Loader{LoaderPlanItems, LoaderRecommendations, LoaderSummary, LoaderAdvisors}
		}
	case PageHistory:
		if hasStudent {
			return []Loader{LoaderHistory}
		}
	case PageSchedule:
		if hasStudent && hasPlan {
			return []Loader{LoaderAvailable}
		}
	case PageFinal:
		if hasStudent {
			return []Loader{LoaderFinalSchedule}
		}
	}
	return nil
}
