package usecase

import (
	"planwise/internal/modules/navigation/domain"
	"planwise/internal/modules/navigation/dto"
	navigationin "planwise/internal/modules/navigation/port/in"
	"planwise/internal/modules/navigation/service"
)

type Interactor struct {
	svc *service.NavigationService
}

func NewInteractor(svc *service.NavigationService) navigationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Pages() []dto.PageOutput {
	pages := domain.Pages()
	out := make([]dto.PageOutput, 0, len(pages))
	for _, p := range pages {
		out = append(out, dto.PageOutput{ID: string(p), Path: p.Path(), Title: p.Title()})
	}
	return out
}

func (i *Interactor) Navigate(path string, state dto.StateInput) dto.ViewOutput {
	page, gen := i.svc.Visit(domain.ResolvePage(path))
	return view(page, gen, true, state)
}

// Back re-derives the loads for the previous page, like a popstate. At the
// start of history nothing moves and the generation is unchanged.
func (i *Interactor) Back(state dto.StateInput) dto.ViewOutput {
	page, gen, moved := i.svc.Back()
	return view(page, gen, moved, state)
}

func (i *Interactor) Forward(state dto.StateInput) dto.ViewOutput {
	page, gen, moved := i.svc.Forward()
	return view(page, gen, moved, state)
}

func (i *Interactor) Refresh(state dto.StateInput) dto.ViewOutput {
	page, gen := i.svc.Refresh()
	return view(page, gen, true, state)
}

func (i *Interactor) Current(state dto.StateInput) dto.ViewOutput {
	page, gen := i.svc.Current()
	return view(page, gen, false, state)
}

func (i *Interactor) IsCurrent(generation uint64) bool {
	return i.svc.IsCurrent(generation)
}

func view(page domain.Page, gen uint64, moved bool, state dto.StateInput) dto.ViewOutput {
	out := dto.ViewOutput{Page: string(page), Path: page.Path(), Generation: gen, Moved: moved}
	if !moved {
		return out
	}
	for _, l := range domain.LoadersFor(page, domain.State{StudentID: state.StudentID, PlanID: state.PlanID}) {
		out.Loaders = append(out.Loaders, string(l))
	}
	return out
}
