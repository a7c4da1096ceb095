package out

import (
	"context"

	"planwise/internal/modules/catalog/domain"
)

type Gateway interface {
	Programs(ctx context.Context) ([]domain.Program, error)
	Subjects(ctx context.Context) ([]string, error)
	Advisors(ctx context.Context) ([]domain.Advisor, error)
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Course, error)
	CurrentMajor(ctx context.Context, studentID int64) (domain.Program, bool, error)
	SaveMajor(ctx context.Context, studentID, programID int64) error
}
