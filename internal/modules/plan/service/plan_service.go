package service

import (
	"context"
	"fmt"

	"planwise/internal/modules/plan/domain"
	"planwise/internal/modules/plan/dto"
	planout "planwise/internal/modules/plan/port/out"
	apperrors "planwise/internal/platform/errors"
	"planwise/internal/platform/validate"
)

type PlanService struct {
	gateway       planout.Gateway
	defaultTermID int64
}

func NewPlanService(gateway planout.Gateway, defaultTermID int64) *PlanService {
	return &PlanService{gateway: gateway, defaultTermID: defaultTermID}
}

func (s *PlanService) Get(ctx context.Context, planID int64) (dto.PlanOutput, error) {
	if planID <= 0 {
		return dto.PlanOutput{}, apperrors.ErrNoPlan
	}
	plan, err := s.gateway.Get(ctx, planID)
	if err != nil {
		return dto.PlanOutput{}, fmt.Errorf("load plan: %w", err)
	}
	total := plan.TotalCredits
	if total == 0 {
		total = plan.ItemCredits()
	}
	items := make([]dto.ItemOutput, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, dto.ItemOutput{
			PCID:        item.PCID,
			CourseID:    item.CourseID,
			TermID:      item.TermID,
			TermCode:    item.TermCode,
			CourseCode:  item.CourseCode,
			Title:       item.Title,
			Credits:     item.Credits,
			Recommended: item.Recommended,
		})
	}
	return dto.PlanOutput{PlanID: planID, TotalCredits: total, Terms: plan.Terms(), Items: items}, nil
}

func (s *PlanService) AddCourse(ctx context.Context, input dto.AddCourseInput) (dto.AddCourseOutput, error) {
	if input.PlanID <= 0 {
		return dto.AddCourseOutput{}, apperrors.ErrNoPlan
	}
	if input.TermID == 0 {
		input.TermID = s.defaultTermID
	}
	if err := validate.Struct(input); err != nil {
		return dto.AddCourseOutput{}, err
	}
	pcID, err := s.gateway.AddCourse(ctx, input.PlanID, input.TermID, input.CourseID)
	if err != nil {
		return dto.AddCourseOutput{}, fmt.Errorf("add to plan: %w", err)
	}
	return dto.AddCourseOutput{PCID: pcID, TermID: input.TermID}, nil
}

func (s *PlanService) Remove(ctx context.Context, input dto.RemoveInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if err := s.gateway.Remove(ctx, input.PCID); err != nil {
		return fmt.Errorf("remove from plan: %w", err)
	}
	return nil
}

func (s *PlanService) Recommendations(ctx context.Context, input dto.RecommendationsInput) ([]dto.CourseOutput, error) {
	if input.StudentID <= 0 {
		return nil, apperrors.ErrNotSignedIn
	}
	if input.PlanID <= 0 {
		return nil, apperrors.ErrNoPlan
	}
	courses, err := s.gateway.Recommendations(ctx, input.StudentID, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}
	return courseOutputs(courses), nil
}

func (s *PlanService) MissingPrereqs(ctx context.Context, input dto.MissingPrereqsInput) ([]dto.MissingPrereqOutput, error) {
	if input.StudentID <= 0 {
		return nil, apperrors.ErrNotSignedIn
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	missing, err := s.gateway.MissingPrereqs(ctx, input.StudentID, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("load prerequisites: %w", err)
	}
	out := make([]dto.MissingPrereqOutput, 0, len(missing))
	for _, m := range missing {
		out = append(out, dto.MissingPrereqOutput{CourseID: m.CourseID, Code: m.Code(), Title: m.Title})
	}
	return out, nil
}

func courseOutputs(courses []domain.Course) []dto.CourseOutput {
	out := make([]dto.CourseOutput, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseOutput{ID: c.ID, Code: c.Code(), Title: c.Title, Credits: c.Credits})
	}
	return out
}
