package usecase

import (
	"context"

	"planwise/internal/modules/schedule/dto"
	schedulein "planwise/internal/modules/schedule/port/in"
	"planwise/internal/modules/schedule/service"
)

type Interactor struct {
	svc *service.ScheduleService
}

func NewInteractor(svc *service.ScheduleService) schedulein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Available(ctx context.Context, planID int64) (dto.ScheduleOutput, error) {
	return i.svc.Available(ctx, planID)
}

func (i *Interactor) Final(ctx context.Context, studentID int64) (dto.ScheduleOutput, error) {
	return i.svc.Final(ctx, studentID)
}

func (i *Interactor) Enroll(ctx context.Context, input dto.SectionInput) (dto.EnrollOutput, error) {
	return i.svc.Enroll(ctx, input)
}

func (i *Interactor) Drop(ctx context.Context, input dto.SectionInput) error {
	return i.svc.Drop(ctx, input)
}

func (i *Interactor) Conflicts(ctx context.Context, planID int64) ([]dto.ConflictOutput, error) {
	return i.svc.Conflicts(ctx, planID)
}
