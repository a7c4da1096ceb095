package usecase

import (
	"context"

	"planwise/internal/modules/plan/dto"
	planin "planwise/internal/modules/plan/port/in"
	"planwise/internal/modules/plan/service"
)

type Interactor struct {
	svc *service.PlanService
}

func NewInteractor(svc *service.PlanService) planin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context, planID int64) (dto.PlanOutput, error) {
	return i.svc.Get(ctx, planID)
}

func (i *Interactor) AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.AddCourseOutput, error) {
	return i.svc.AddCourse(ctx, input)
}

func (i *Interactor) Remove(ctx context.Context, input dto.RemoveInput) error {
	return i.svc.Remove(ctx, input)
}

func (i *Interactor) Recommendations(ctx context.Context, input dto.RecommendationsInput) ([]dto.CourseOutput, error) {
	return i.svc.Recommendations(ctx, input)
}

func (i *Interactor) MissingPrereqs(ctx context.Context, input dto.MissingPrereqsInput) ([]dto.MissingPrereqOutput, error) {
	return i.svc.MissingPrereqs(ctx, input)
}
