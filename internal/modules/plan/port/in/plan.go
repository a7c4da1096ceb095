package in

import (
	"context"

	"planwise/internal/modules/plan/dto"
)

type Usecase interface {
	Get(ctx context.Context, planID int64) (dto.PlanOutput, error)
	AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.AddCourseOutput, error)
	Remove(ctx context.Context, input dto.RemoveInput) error
	Recommendations(ctx context.Context, input dto.RecommendationsInput) ([]dto.CourseOutput, error)
	MissingPrereqs(ctx context.Context, input dto.MissingPrereqsInput) ([]dto.MissingPrereqOutput, error)
}
