package in

import (
	"context"

	"planwise/internal/modules/history/dto"
)

type Usecase interface {
	List(ctx context.Context, studentID int64) ([]dto.CompletedCourseOutput, error)
	Summary(ctx context.Context, studentID int64) (dto.SummaryOutput, error)
	UpdateGrade(ctx context.Context, input dto.UpdateGradeInput) error
	Remove(ctx context.Context, input dto.RemoveInput) error
	AddCompleted(ctx context.Context, input dto.AddCompletedInput) error
	ImportTranscript(ctx context.Context, input dto.ImportTranscriptInput) (dto.ImportTranscriptOutput, error)
}
