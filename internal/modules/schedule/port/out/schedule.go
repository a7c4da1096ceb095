package out

import (
	"context"

	"planwise/internal/modules/schedule/domain"
)

type Gateway interface {
	Available(ctx context.Context, planID int64) ([]domain.MeetingRow, error)
	Final(ctx context.Context, studentID int64) ([]domain.MeetingRow, error)
	Enroll(ctx context.Context, studentID, sectionID int64) (int64, error)
	Drop(ctx context.Context, studentID, sectionID int64) error
	Conflicts(ctx context.Context, planID int64) ([]domain.Conflict, error)
}
