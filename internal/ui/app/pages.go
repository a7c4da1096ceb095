package app

import (
	"strings"

	navigationdto "planwise/internal/modules/navigation/dto"
	"planwise/internal/ui/components"
	advisorsview "planwise/internal/ui/views/advisors"
	finalview "planwise/internal/ui/views/final"
	historyview "planwise/internal/ui/views/history"
	homeview "planwise/internal/ui/views/home"
	planview "planwise/internal/ui/views/plan"
	recsview "planwise/internal/ui/views/recommendations"
	scheduleview "planwise/internal/ui/views/schedule"
	searchview "planwise/internal/ui/views/search"
	summaryview "planwise/internal/ui/views/summary"
)

// signedInFor reports whether the state carries the ids page needs. History
// and final are per student; plan and schedule also need the plan.
func (m Model) signedInFor(page string) bool {
	switch page {
	case navigationdto.PageHistory, navigationdto.PageFinal:
		return m.state.StudentID > 0
	default:
		return m.state.StudentID > 0 && m.state.PlanID > 0
	}
}

// pageView composes the current page from its regions. Each region shows a
// loading line while its load is in flight.
func (m Model) pageView() string {
	if m.view.Page == navigationdto.PageHome {
		return homeview.Render(m.home, m.md)
	}
	if !m.signedInFor(m.view.Page) {
		return components.Empty(signInFirst + ": open the palette with : and run signin <login_id>.")
	}

	width := max(m.width-4, 0)
	var sections []string
	switch m.view.Page {
	case navigationdto.PagePlan:
		sections = []string{
			m.regionView(navigationdto.LoaderSummary, "Loading summary...", func() string {
				return summaryview.Render(m.summary.data, m.summary.err)
			}),
			m.regionView(navigationdto.LoaderPlanItems, "Loading plan...", func() string {
				return planview.Render(m.plan.data, m.plan.err, width)
			}),
			planview.Findings(m.auditSource, m.findings),
			m.regionView(navigationdto.LoaderRecommendations, "Loading recommendations...", func() string {
				return recsview.Render(m.recs.data, m.recs.err)
			}),
			searchview.Render(m.searchQuery, m.results.data, m.results.err),
			m.regionView(navigationdto.LoaderAdvisors, "Loading advisors...", func() string {
				return advisorsview.Render(m.advisors.data, m.advisors.err, width)
			}),
		}
	case navigationdto.PageHistory:
		sections = []string{
			m.regionView(navigationdto.LoaderSummary, "Loading summary...", func() string {
				return summaryview.Render(m.summary.data, m.summary.err)
			}),
			m.regionView(navigationdto.LoaderHistory, "Loading history...", func() string {
				return historyview.Render(m.history.data, m.history.err, width)
			}),
			searchview.Render(m.searchQuery, m.results.data, m.results.err),
		}
	case navigationdto.PageSchedule:
		sections = []string{
			m.regionView(navigationdto.LoaderAvailable, "Loading available class times...", func() string {
				return scheduleview.Render(m.available.data, m.available.err, width)
			}),
			scheduleview.Conflicts(m.conflicts.data, m.conflicts.err),
			m.regionView(navigationdto.LoaderFinalSchedule, "Loading final schedule...", func() string {
				return finalview.Render(m.final.data, m.final.err, width)
			}),
		}
	case navigationdto.PageFinal:
		sections = []string{
			m.regionView(navigationdto.LoaderFinalSchedule, "Loading final schedule...", func() string {
				return finalview.Render(m.final.data, m.final.err, width)
			}),
		}
	}

	parts := sections[:0]
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) regionView(loader, loadingText string, render func() string) string {
	if m.loading[loader] {
		return m.spinner.View() + " " + components.Empty(loadingText)
	}
	return render()
}
