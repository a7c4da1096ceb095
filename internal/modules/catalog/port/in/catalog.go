package in

import (
	"context"

	"planwise/internal/modules/catalog/dto"
)

type Usecase interface {
	Programs(ctx context.Context) ([]dto.ProgramOutput, error)
	Subjects(ctx context.Context) ([]string, error)
	Advisors(ctx context.Context) ([]dto.AdvisorOutput, error)
	Search(ctx context.Context, input dto.SearchInput) ([]dto.CourseOutput, error)
	FindCourse(ctx context.Context, subject, cataNum string) (dto.CourseOutput, bool, error)
	CurrentMajor(ctx context.Context, studentID int64) (dto.MajorOutput, error)
	SaveMajor(ctx context.Context, input dto.SaveMajorInput) error
}
