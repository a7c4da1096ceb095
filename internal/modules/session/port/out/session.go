package out

import (
	"context"

	"planwise/internal/modules/session/domain"
)

type Gateway interface {
	SignIn(ctx context.Context, loginID string) (domain.Student, int64, error)
}

// StateStore keeps the session across runs. Load never fails on a missing
// or unparseable key; that key reads as zero.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	LoadProfile(ctx context.Context) (domain.Profile, bool, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
}
