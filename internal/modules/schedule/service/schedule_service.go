package service

import (
	"context"
	"fmt"

	"planwise/internal/modules/schedule/domain"
	"planwise/internal/modules/schedule/dto"
	scheduleout "planwise/internal/modules/schedule/port/out"
	apperrors "planwise/internal/platform/errors"
	"planwise/internal/platform/validate"
)

type ScheduleService struct {
	gateway          scheduleout.Gateway
	checkConsistency bool
}

// NewScheduleService builds the service. With checkConsistency set, every
// load also reports meeting rows that disagree with their section.
func NewScheduleService(gateway scheduleout.Gateway, checkConsistency bool) *ScheduleService {
	return &ScheduleService{gateway: gateway, checkConsistency: checkConsistency}
}

func (s *ScheduleService) Available(ctx context.Context, planID int64) (dto.ScheduleOutput, error) {
	if planID <= 0 {
		return dto.ScheduleOutput{}, apperrors.ErrNoPlan
	}
	rows, err := s.gateway.Available(ctx, planID)
	if err != nil {
		return dto.ScheduleOutput{}, fmt.Errorf("load available sections: %w", err)
	}
	return s.build(rows), nil
}

func (s *ScheduleService) Final(ctx context.Context, studentID int64) (dto.ScheduleOutput, error) {
	if studentID <= 0 {
		return dto.ScheduleOutput{}, apperrors.ErrNotSignedIn
	}
	rows, err := s.gateway.Final(ctx, studentID)
	if err != nil {
		return dto.ScheduleOutput{}, fmt.Errorf("load final schedule: %w", err)
	}
	return s.build(rows), nil
}

func (s *ScheduleService) Enroll(ctx context.Context, input dto.SectionInput) (dto.EnrollOutput, error) {
	if input.StudentID <= 0 {
		return dto.EnrollOutput{}, apperrors.ErrNotSignedIn
	}
	if err := validate.Struct(input); err != nil {
		return dto.EnrollOutput{}, err
	}
	enrollID, err := s.gateway.Enroll(ctx, input.StudentID, input.SectionID)
	if err != nil {
		return dto.EnrollOutput{}, fmt.Errorf("enroll: %w", err)
	}
	return dto.EnrollOutput{EnrollID: enrollID}, nil
}

func (s *ScheduleService) Drop(ctx context.Context, input dto.SectionInput) error {
	if input.StudentID <= 0 {
		return apperrors.ErrNotSignedIn
	}
	if err := validate.Struct(input); err != nil {
		return err
	}
	if err := s.gateway.Drop(ctx, input.StudentID, input.SectionID); err != nil {
		return fmt.Errorf("remove from schedule: %w", err)
	}
	return nil
}

func (s *ScheduleService) Conflicts(ctx context.Context, planID int64) ([]dto.ConflictOutput, error) {
	if planID <= 0 {
		return nil, apperrors.ErrNoPlan
	}
	conflicts, err := s.gateway.Conflicts(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load time conflicts: %w", err)
	}
	pairs := domain.Pairs(conflicts)
	out := make([]dto.ConflictOutput, 0, len(pairs))
	for _, c := range pairs {
		out = append(out, dto.ConflictOutput{
			SectionA:  c.SectionA,
			SectionB:  c.SectionB,
			Day:       domain.DayLabel(c.Day),
			ATimeText: domain.ClockText(c.AStart) + "–" + domain.ClockText(c.AEnd),
			BTimeText: domain.ClockText(c.BStart) + "–" + domain.ClockText(c.BEnd),
		})
	}
	return out, nil
}

func (s *ScheduleService) build(rows []domain.MeetingRow) dto.ScheduleOutput {
	sections := domain.Aggregate(rows)
	out := dto.ScheduleOutput{Sections: make([]dto.SectionOutput, 0, len(sections))}
	for _, sec := range sections {
		out.Sections = append(out.Sections, dto.SectionOutput{
			SectionID:  sec.SectionID,
			CourseCode: sec.CourseCode,
			Title:      sec.Title,
			Location:   sec.Location,
			Days:       sec.Days,
			DaysText:   sec.DaysText(),
			TimeText:   sec.TimeText(),
		})
	}
	if s.checkConsistency {
		for _, issue := range domain.CheckConsistency(rows) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("section %d row %d: %s %q differs from %q",
				issue.SectionID, issue.Row, issue.Field, issue.Got, issue.Want))
		}
	}
	return out
}
