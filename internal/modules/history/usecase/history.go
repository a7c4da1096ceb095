package usecase

import (
	"context"
	"fmt"

	"planwise/internal/modules/history/domain"
	"planwise/internal/modules/history/dto"
	historyin "planwise/internal/modules/history/port/in"
	historyout "planwise/internal/modules/history/port/out"
	"planwise/internal/modules/history/service"
	"planwise/internal/platform/validate"
)

type Interactor struct {
	svc      *service.HistoryService
	reader   historyout.TranscriptReader
	resolver historyout.CourseResolver
}

func NewInteractor(svc *service.HistoryService, reader historyout.TranscriptReader, resolver historyout.CourseResolver) historyin.Usecase {
	return &Interactor{svc: svc, reader: reader, resolver: resolver}
}

func (i *Interactor) List(ctx context.Context, studentID int64) ([]dto.CompletedCourseOutput, error) {
	return i.svc.List(ctx, studentID)
}

func (i *Interactor) Summary(ctx context.Context, studentID int64) (dto.SummaryOutput, error) {
	return i.svc.Summary(ctx, studentID)
}

func (i *Interactor) UpdateGrade(ctx context.Context, input dto.UpdateGradeInput) error {
	return i.svc.UpdateGrade(ctx, input)
}

func (i *Interactor) Remove(ctx context.Context, input dto.RemoveInput) error {
	return i.svc.Remove(ctx, input)
}

func (i *Interactor) AddCompleted(ctx context.Context, input dto.AddCompletedInput) error {
	return i.svc.AddCompleted(ctx, input)
}

// ImportTranscript records every recognised transcript row as a completed
// course. Rows that cannot be matched to the catalog are reported, not fatal.
func (i *Interactor) ImportTranscript(ctx context.Context, input dto.ImportTranscriptInput) (dto.ImportTranscriptOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ImportTranscriptOutput{}, err
	}
	if i.reader == nil || i.resolver == nil {
		return dto.ImportTranscriptOutput{}, fmt.Errorf("transcript import is not configured")
	}
	lines, err := i.reader.ReadLines(ctx, input.Path)
	if err != nil {
		return dto.ImportTranscriptOutput{}, err
	}
	entries := domain.ParseTranscript(lines)
	out := dto.ImportTranscriptOutput{
		Imported: make([]dto.ImportedCourse, 0, len(entries)),
		Skipped:  []dto.SkippedCourse{},
	}
	if len(entries) == 0 {
		return out, fmt.Errorf("no course rows found in %s", input.Path)
	}
	for _, entry := range entries {
		courseID, found, err := i.resolver.Resolve(ctx, entry.Subject, entry.CataNum)
		if err != nil {
			out.Skipped = append(out.Skipped, dto.SkippedCourse{Code: entry.Code(), Reason: err.Error()})
			continue
		}
		if !found {
			out.Skipped = append(out.Skipped, dto.SkippedCourse{Code: entry.Code(), Reason: "not in catalog"})
			continue
		}
		if !input.DryRun {
			err := i.svc.AddCompleted(ctx, dto.AddCompletedInput{StudentID: input.StudentID, CourseID: courseID, Grade: entry.Grade})
			if err != nil {
				out.Skipped = append(out.Skipped, dto.SkippedCourse{Code: entry.Code(), Reason: err.Error()})
				continue
			}
		}
		out.Imported = append(out.Imported, dto.ImportedCourse{Code: entry.Code(), CourseID: courseID, Grade: entry.Grade})
	}
	return out, nil
}
