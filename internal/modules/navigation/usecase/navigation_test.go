package usecase_test

import (
	"reflect"
	"testing"

	"planwise/internal/modules/navigation/dto"
	"planwise/internal/modules/navigation/service"
	"planwise/internal/modules/navigation/usecase"
)

var signedIn = dto.StateInput{StudentID: 1, PlanID: 5}

func TestNavigateBumpsGenerationAndDerivesLoads(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewNavigationService())

	first := uc.Navigate("/plan", signedIn)
	if first.Page != dto.PagePlan || first.Generation != 1 {
		t.Fatalf("unexpected view: %+v", first)
	}
	want := []string{dto.LoaderPlanItems, dto.LoaderRecommendations, dto.LoaderSummary, dto.LoaderAdvisors}
	if !reflect.DeepEqual(first.Loaders, want) {
		t.Fatalf("unexpected loaders: %v", first.Loaders)
	}

	second := uc.Navigate("/history", signedIn)
	if second.Generation != 2 || uc.IsCurrent(first.Generation) || !uc.IsCurrent(second.Generation) {
		t.Fatalf("older generation should be stale: %+v", second)
	}
}

func TestNavigateWithoutSessionLoadsNothing(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewNavigationService())
	view := uc.Navigate("/plan", dto.StateInput{PlanID: 5})
	if view.Page != dto.PagePlan || len(view.Loaders) != 0 {
		t.Fatalf("expected plan page with no loads: %+v", view)
	}
}

func TestBackAndForwardRederiveLoads(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewNavigationService())
	uc.Navigate("/plan", signedIn)
	uc.Navigate("/final", signedIn)

	back := uc.Back(signedIn)
	if !back.Moved || back.Page != dto.PagePlan || len(back.Loaders) != 4 || back.Generation != 3 {
		t.Fatalf("unexpected back: %+v", back)
	}
	home := uc.Back(signedIn)
	if home.Page != dto.PageHome || len(home.Loaders) != 0 {
		t.Fatalf("unexpected second back: %+v", home)
	}
	stuck := uc.Back(signedIn)
	if stuck.Moved || stuck.Generation != home.Generation {
		t.Fatalf("back at start should not move: %+v", stuck)
	}

	fwd := uc.Forward(signedIn)
	if fwd.Page != dto.PagePlan || !fwd.Moved {
		t.Fatalf("unexpected forward: %+v", fwd)
	}
	uc.Navigate("/schedule", signedIn)
	if end := uc.Forward(signedIn); end.Moved {
		t.Fatalf("navigate should drop forward entries: %+v", end)
	}
}

func TestRefreshKeepsPage(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewNavigationService())
	view := uc.Navigate("/final", signedIn)
	refreshed := uc.Refresh(signedIn)
	if refreshed.Page != dto.PageFinal || refreshed.Generation != view.Generation+1 {
		t.Fatalf("unexpected refresh: %+v", refreshed)
	}
	if !reflect.DeepEqual(refreshed.Loaders, []string{dto.LoaderFinalSchedule}) {
		t.Fatalf("unexpected loaders: %v", refreshed.Loaders)
	}
	if current := uc.Current(signedIn); current.Page != dto.PageFinal || current.Generation != refreshed.Generation {
		t.Fatalf("unexpected current: %+v", current)
	}
}

func TestPagesInTabOrder(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewNavigationService())
	pages := uc.Pages()
	if len(pages) != 5 || pages[0].Path != "/" || pages[3].Title != "Schedule" {
		t.Fatalf("unexpected pages: %+v", pages)
	}
}
