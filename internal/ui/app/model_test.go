package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	historydto "planwise/internal/modules/history/dto"
	navigationin "planwise/internal/modules/navigation/adapter/in"
	navigationdto "planwise/internal/modules/navigation/dto"
	navigationservice "planwise/internal/modules/navigation/service"
	navigationusecase "planwise/internal/modules/navigation/usecase"
	plandto "planwise/internal/modules/plan/dto"
	sessiondto "planwise/internal/modules/session/dto"
	"planwise/internal/ui/components"
)

type fakePlan struct {
	planPort
	added [3]int64
}

func (f *fakePlan) AddCourse(_ context.Context, planID, courseID, termID int64) (plandto.AddCourseOutput, error) {
	f.added = [3]int64{planID, courseID, termID}
	return plandto.AddCourseOutput{PCID: 1, TermID: termID}, nil
}

func newTestModel(t *testing.T, plan planPort) Model {
	t.Helper()
	nav := navigationin.NewCLIHandler(navigationusecase.NewInteractor(navigationservice.NewNavigationService()))
	return NewModel(Ports{Navigation: nav, Plan: plan}, Options{DefaultTermID: 8}, zerolog.Nop())
}

func signedIn(m Model) Model {
	m.state = sessiondto.StateOutput{StudentID: 5, PlanID: 9}
	return m
}

func update(t *testing.T, m Model, msg any) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestStaleLoadIsDropped(t *testing.T) {
	t.Parallel()
	m := signedIn(newTestModel(t, nil))

	first := m.ports.Navigation.Navigate("/plan", 5, 9)
	m.apply(first)
	second := m.ports.Navigation.Navigate("/history", 5, 9)
	m.apply(second)
	if !m.loading[navigationdto.LoaderHistory] || !m.loading[navigationdto.LoaderSummary] {
		t.Fatalf("history page should load history and summary: %v", m.loading)
	}

	m = update(t, m, loadedMsg{
		gen:    first.Generation,
		loader: navigationdto.LoaderPlanItems,
		value:  plandto.PlanOutput{PlanID: 9, Items: []plandto.ItemOutput{{PCID: 1}}},
	})
	if m.plan.data.PlanID != 0 {
		t.Fatalf("stale plan load was applied: %+v", m.plan.data)
	}

	m = update(t, m, loadedMsg{
		gen:    second.Generation,
		loader: navigationdto.LoaderHistory,
		value:  []historydto.CompletedCourseOutput{{EnrollID: 4, Code: "ENGL 15"}},
	})
	if len(m.history.data) != 1 || m.loading[navigationdto.LoaderHistory] {
		t.Fatalf("current load not applied: %+v loading=%v", m.history.data, m.loading)
	}
	if !strings.Contains(m.pageView(), "ENGL 15") {
		t.Fatalf("history page does not show the loaded course:\n%s", m.pageView())
	}
}

func TestBackAtStartDoesNotMove(t *testing.T) {
	t.Parallel()
	m := signedIn(newTestModel(t, nil))
	m = update(t, m, components.PaletteSubmitMsg{Input: "back"})
	if m.view.Page != navigationdto.PageHome || m.status != "Nothing to go back to" {
		t.Fatalf("unexpected state: page=%s status=%q", m.view.Page, m.status)
	}
}

func TestPaletteValidation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input    string
		signedIn bool
		status   string
	}{
		{input: "signin", status: "Enter login id"},
		{input: "search", status: "Enter a query or choose a filter"},
		{input: "add 7", status: signInFirst},
		{input: "major", signedIn: true, status: "Pick a major"},
		{input: "grade 4", signedIn: true, status: "usage: grade <enroll_id> <grade>"},
		{input: "frobnicate", status: "unknown command: frobnicate"},
	}
	for _, tc := range cases {
		m := newTestModel(t, nil)
		if tc.signedIn {
			m = signedIn(m)
		}
		m = update(t, m, components.PaletteSubmitMsg{Input: tc.input})
		if m.status != tc.status {
			t.Fatalf("%q: expected status %q, got %q", tc.input, tc.status, m.status)
		}
	}
}

func TestAddUsesDefaultTermAndRefetches(t *testing.T) {
	t.Parallel()
	plan := &fakePlan{}
	m := signedIn(newTestModel(t, plan))
	m.apply(m.ports.Navigation.Navigate("/plan", 5, 9))

	m, cmd := m.executePalette("add 7")
	msg := cmd()
	if plan.added != [3]int64{9, 7, 8} {
		t.Fatalf("unexpected add call: %v", plan.added)
	}
	done, ok := msg.(mutatedMsg)
	if !ok || done.err != nil {
		t.Fatalf("unexpected message: %#v", msg)
	}

	m.loading = map[string]bool{}
	m = update(t, m, done)
	if m.status != "Added" {
		t.Fatalf("expected toast, got %q", m.status)
	}
	for _, loader := range []string{navigationdto.LoaderPlanItems, navigationdto.LoaderRecommendations, navigationdto.LoaderSummary} {
		if !m.loading[loader] {
			t.Fatalf("expected %s refetch, loading=%v", loader, m.loading)
		}
	}
}

func TestToastExpiresOnlyForLatest(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, nil)
	m.notify("first")
	stale := m.toastID
	m.notify("second")

	m = update(t, m, toastExpiredMsg{id: stale})
	if m.status != "second" {
		t.Fatalf("older toast cleared the newer one: %q", m.status)
	}
	m = update(t, m, toastExpiredMsg{id: m.toastID})
	if m.status != "" {
		t.Fatalf("toast not cleared: %q", m.status)
	}
}

func TestParseSearch(t *testing.T) {
	t.Parallel()
	text, subject, level := parseSearch([]string{"data", "structures", "subject=cmpsc", "level=400"})
	if text != "data structures" || subject != "CMPSC" || level != "400" {
		t.Fatalf("unexpected parse: %q %q %q", text, subject, level)
	}
}

func TestSignInKeepsNewStudentWhenMajorFails(t *testing.T) {
	t.Parallel()
	m := signedIn(newTestModel(t, nil))
	next, cmd := m.Update(signedInMsg{
		out: sessiondto.SignInOutput{StudentID: 42, PlanID: 77, Name: "Ada Lovelace"},
		err: errors.New("HTTP 500"),
	})
	m = next.(Model)
	if m.state.StudentID != 42 || m.state.PlanID != 77 {
		t.Fatalf("state not switched to the stored session: %+v", m.state)
	}
	if m.status != "Signed in; major not saved: HTTP 500" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if cmd == nil {
		t.Fatalf("expected a session reload")
	}
}

func TestSignInFailureKeepsState(t *testing.T) {
	t.Parallel()
	m := signedIn(newTestModel(t, nil))
	m = update(t, m, signedInMsg{err: errors.New("HTTP 404")})
	if m.state.StudentID != 5 || m.state.PlanID != 9 {
		t.Fatalf("failed sign in changed state: %+v", m.state)
	}
	if m.status != "Sign in failed: HTTP 404" {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestHistoryPageNeedsOnlyStudent(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, nil)
	m.state = sessiondto.StateOutput{StudentID: 5}
	view := m.ports.Navigation.Navigate("/history", 5, 0)
	m.apply(view)
	m = update(t, m, loadedMsg{
		gen:    view.Generation,
		loader: navigationdto.LoaderHistory,
		value:  []historydto.CompletedCourseOutput{{EnrollID: 4, Code: "MATH 140", Grade: "A"}},
	})
	page := m.pageView()
	if strings.Contains(page, signInFirst) || !strings.Contains(page, "MATH 140") {
		t.Fatalf("history page hidden without a plan id:\n%s", page)
	}

	m.apply(m.ports.Navigation.Navigate("/plan", 5, 0))
	if !strings.Contains(m.pageView(), signInFirst) {
		t.Fatalf("plan page rendered without a plan id:\n%s", m.pageView())
	}
}
