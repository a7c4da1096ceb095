package usecase

import (
	"context"

	catalogdto "planwise/internal/modules/catalog/dto"
	catalogin "planwise/internal/modules/catalog/port/in"
	sessiondto "planwise/internal/modules/session/dto"
	sessionin "planwise/internal/modules/session/port/in"
	"planwise/internal/modules/session/service"
)

type Interactor struct {
	svc     *service.SessionService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.SessionService, catalog catalogin.Usecase) sessionin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

// SignIn signs in and, when a program is given, saves it as the primary
// major. A failed major save is returned after the session is already stored.
func (i *Interactor) SignIn(ctx context.Context, input sessiondto.SignInInput) (sessiondto.SignInOutput, error) {
	profile, err := i.svc.SignIn(ctx, input.LoginID)
	if err != nil {
		return sessiondto.SignInOutput{}, err
	}
	out := sessiondto.SignInOutput{
		StudentID: profile.Student.ID,
		PlanID:    profile.PlanID,
		Name:      profile.Student.Name(),
		Email:     profile.Student.Email,
	}
	if input.ProgramID > 0 && i.catalog != nil {
		err := i.catalog.SaveMajor(ctx, catalogdto.SaveMajorInput{StudentID: profile.Student.ID, ProgramID: input.ProgramID})
		if err != nil {
			return out, err
		}
		out.MajorSaved = true
	}
	return out, nil
}

func (i *Interactor) Current(ctx context.Context) (sessiondto.StateOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return sessiondto.StateOutput{}, err
	}
	return sessiondto.StateOutput{StudentID: state.StudentID, PlanID: state.PlanID}, nil
}

func (i *Interactor) Profile(ctx context.Context) (sessiondto.ProfileOutput, error) {
	profile, err := i.svc.Profile(ctx)
	if err != nil {
		return sessiondto.ProfileOutput{}, err
	}
	return sessiondto.ProfileOutput{
		StudentID:        profile.Student.ID,
		PlanID:           profile.PlanID,
		LoginID:          profile.Student.LoginID,
		Name:             profile.Student.Name(),
		Email:            profile.Student.Email,
		AdvisorName:      profile.Student.AdvisorName(),
		CatalogYearID:    profile.Student.CatalogYearID,
		ExpectedGradTerm: profile.Student.ExpectedGradTerm,
		SignedInAt:       profile.SignedInAt,
	}, nil
}
