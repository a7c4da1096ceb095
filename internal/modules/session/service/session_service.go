package service

import (
	"context"
	"fmt"
	"strings"

	"planwise/internal/modules/session/domain"
	sessionout "planwise/internal/modules/session/port/out"
	"planwise/internal/platform/clock"
	apperrors "planwise/internal/platform/errors"
	"planwise/internal/platform/tx"
)

type SessionService struct {
	clock   clock.Clock
	gateway sessionout.Gateway
	store   sessionout.StateStore
	tx      tx.Manager
}

func NewSessionService(clock clock.Clock, gateway sessionout.Gateway, store sessionout.StateStore, txm tx.Manager) *SessionService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &SessionService{clock: clock, gateway: gateway, store: store, tx: txm}
}

// SignIn resolves the login with the backend and persists state and profile
// together. Nothing is stored when the backend call fails.
func (s *SessionService) SignIn(ctx context.Context, loginID string) (domain.Profile, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return domain.Profile{}, fmt.Errorf("%w: enter login id", apperrors.ErrInvalidInput)
	}
	student, planID, err := s.gateway.SignIn(ctx, loginID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("sign in: %w", err)
	}
	if student.ID <= 0 {
		return domain.Profile{}, fmt.Errorf("sign in: backend returned no student for %q", loginID)
	}
	profile := domain.Profile{Student: student, PlanID: planID, SignedInAt: s.clock.Now()}
	err = s.tx.Within(ctx, func(ctx context.Context) error {
		if err := s.store.Save(ctx, domain.State{StudentID: student.ID, PlanID: planID}); err != nil {
			return err
		}
		return s.store.SaveProfile(ctx, profile)
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("save session: %w", err)
	}
	return profile, nil
}

func (s *SessionService) Current(ctx context.Context) (domain.State, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.State{}, fmt.Errorf("load session: %w", err)
	}
	return state, nil
}

func (s *SessionService) Profile(ctx context.Context) (domain.Profile, error) {
	profile, ok, err := s.store.LoadProfile(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return domain.Profile{}, apperrors.ErrNotSignedIn
	}
	return profile, nil
}
