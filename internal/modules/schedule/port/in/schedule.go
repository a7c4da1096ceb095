package in

import (
	"context"

	"planwise/internal/modules/schedule/dto"
)

type Usecase interface {
	Available(ctx context.Context, planID int64) (dto.ScheduleOutput, error)
	Final(ctx context.Context, studentID int64) (dto.ScheduleOutput, error)
	Enroll(ctx context.Context, input dto.SectionInput) (dto.EnrollOutput, error)
	Drop(ctx context.Context, input dto.SectionInput) error
	Conflicts(ctx context.Context, planID int64) ([]dto.ConflictOutput, error)
}
