package out

import (
	"context"

	"planwise/internal/modules/plan/domain"
)

type Gateway interface {
	Get(ctx context.Context, planID int64) (domain.Plan, error)
	AddCourse(ctx context.Context, planID, termID, courseID int64) (int64, error)
	Remove(ctx context.Context, pcID int64) error
	Recommendations(ctx context.Context, studentID, planID int64) ([]domain.Course, error)
	MissingPrereqs(ctx context.Context, studentID, courseID int64) ([]domain.MissingPrereq, error)
}
