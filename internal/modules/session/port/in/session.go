package in

import (
	"context"

	"planwise/internal/modules/session/dto"
)

type Usecase interface {
	SignIn(ctx context.Context, input dto.SignInInput) (dto.SignInOutput, error)
	Current(ctx context.Context) (dto.StateOutput, error)
	Profile(ctx context.Context) (dto.ProfileOutput, error)
}
