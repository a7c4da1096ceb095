package in

import (
	"context"

	sessiondto "planwise/internal/modules/session/dto"
	sessionin "planwise/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SignIn(ctx context.Context, loginID string, programID int64) (sessiondto.SignInOutput, error) {
	return h.usecase.SignIn(ctx, sessiondto.SignInInput{LoginID: loginID, ProgramID: programID})
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.StateOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (sessiondto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}
