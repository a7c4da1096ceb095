package service

import (
	"context"
	"fmt"

	"planwise/internal/modules/history/domain"
	"planwise/internal/modules/history/dto"
	historyout "planwise/internal/modules/history/port/out"
	apperrors "planwise/internal/platform/errors"
	"planwise/internal/platform/validate"
)

const defaultCompletedGrade = "A"

type HistoryService struct {
	gateway historyout.Gateway
}

func NewHistoryService(gateway historyout.Gateway) *HistoryService {
	return &HistoryService{gateway: gateway}
}

func (s *HistoryService) Records(ctx context.Context, studentID int64) ([]domain.CompletedCourse, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrNotSignedIn
	}
	records, err := s.gateway.List(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return records, nil
}

func (s *HistoryService) List(ctx context.Context, studentID int64) ([]dto.CompletedCourseOutput, error) {
	records, err := s.Records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompletedCourseOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.CompletedCourseOutput{
			EnrollID: r.EnrollID,
			CourseID: r.CourseID,
			Code:     r.Code(),
			Title:    r.Title,
			Credits:  r.Credits,
			Grade:    r.Grade,
			TermCode: r.TermCode,
			ClassNum: r.ClassNum,
		})
	}
	return out, nil
}

func (s *HistoryService) Summary(ctx context.Context, studentID int64) (dto.SummaryOutput, error) {
	records, err := s.Records(ctx, studentID)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	summary := domain.Summarize(records)
	return dto.SummaryOutput{
		TotalCredits: summary.TotalCredits,
		GPA:          summary.GPA,
		GPAText:      summary.GPAText(),
		Standing:     string(summary.Standing),
	}, nil
}

func (s *HistoryService) UpdateGrade(ctx context.Context, input dto.UpdateGradeInput) error {
	input.Grade = domain.NormalizeGrade(input.Grade)
	if err := validate.Struct(input); err != nil {
		return err
	}
	if err := s.gateway.UpdateGrade(ctx, input.StudentID, input.EnrollID, input.Grade); err != nil {
		return fmt.Errorf("update grade: %w", err)
	}
	return nil
}

func (s *HistoryService) Remove(ctx context.Context, input dto.RemoveInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if err := s.gateway.Remove(ctx, input.StudentID, input.EnrollID); err != nil {
		return fmt.Errorf("remove history entry: %w", err)
	}
	return nil
}

func (s *HistoryService) AddCompleted(ctx context.Context, input dto.AddCompletedInput) error {
	input.Grade = domain.NormalizeGrade(input.Grade)
	if input.Grade == "" {
		input.Grade = defaultCompletedGrade
	}
	if err := validate.Struct(input); err != nil {
		return err
	}
	if err := s.gateway.AddCompleted(ctx, input.StudentID, input.CourseID, input.Grade); err != nil {
		return fmt.Errorf("add completed course: %w", err)
	}
	return nil
}
