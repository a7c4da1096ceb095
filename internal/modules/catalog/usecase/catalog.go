package usecase

import (
	"context"

	"planwise/internal/modules/catalog/domain"
	"planwise/internal/modules/catalog/dto"
	catalogin "planwise/internal/modules/catalog/port/in"
	"planwise/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Programs(ctx context.Context) ([]dto.ProgramOutput, error) {
	return i.svc.Programs(ctx)
}

func (i *Interactor) Subjects(ctx context.Context) ([]string, error) {
	return i.svc.Subjects(ctx)
}

func (i *Interactor) Advisors(ctx context.Context) ([]dto.AdvisorOutput, error) {
	return i.svc.Advisors(ctx)
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.CourseOutput, error) {
	return i.svc.Search(ctx, input)
}

func (i *Interactor) FindCourse(ctx context.Context, subject, cataNum string) (dto.CourseOutput, bool, error) {
	course, ok, err := i.svc.FindCourse(ctx, subject, cataNum)
	if err != nil || !ok {
		return dto.CourseOutput{}, ok, err
	}
	return service.CourseOutputs([]domain.Course{course})[0], true, nil
}

func (i *Interactor) CurrentMajor(ctx context.Context, studentID int64) (dto.MajorOutput, error) {
	return i.svc.CurrentMajor(ctx, studentID)
}

func (i *Interactor) SaveMajor(ctx context.Context, input dto.SaveMajorInput) error {
	return i.svc.SaveMajor(ctx, input)
}
