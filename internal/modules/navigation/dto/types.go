package dto

import "planwise/internal/modules/navigation/domain"

const (
	PageHome     = string(domain.PageHome)
	PagePlan     = string(domain.PagePlan)
	PageHistory  = string(domain.PageHistory)
	PageSchedule = string(domain.PageSchedule)
	PageFinal    = string(domain.PageFinal)
)

const (
	LoaderPlanItems       = string(domain.LoaderPlanItems)
	LoaderRecommendations = string(domain.LoaderRecommendations)
	LoaderSummary         = string(domain.LoaderSummary)
	LoaderAdvisors        = string(domain.LoaderAdvisors)
	LoaderHistory         = string(domain.LoaderHistory)
	LoaderAvailable       = string(domain.LoaderAvailable)
	LoaderFinalSchedule   = string(domain.LoaderFinalSchedule)
)

// StateInput is the session the loads are derived from.
type StateInput struct {
	StudentID int64
	PlanID    int64
}

type PageOutput struct {
	ID    string
	Path  string
	Title string
}

// ViewOutput is what to show and which loads to issue for it. Loads tagged
// with an older Generation must not be applied.
type ViewOutput struct {
	Page       string
	Path       string
	Generation uint64
	Loaders    []string
	Moved      bool
}
