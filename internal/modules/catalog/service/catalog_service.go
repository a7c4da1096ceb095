package service

import (
	"context"
	"fmt"
	"sort"

	"planwise/internal/modules/catalog/domain"
	"planwise/internal/modules/catalog/dto"
	catalogout "planwise/internal/modules/catalog/port/out"
	apperrors "planwise/internal/platform/errors"
)

type CatalogService struct {
	gateway catalogout.Gateway
}

func NewCatalogService(gateway catalogout.Gateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

func (s *CatalogService) Programs(ctx context.Context) ([]dto.ProgramOutput, error) {
	programs, err := s.gateway.Programs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load programs: %w", err)
	}
	out := make([]dto.ProgramOutput, 0, len(programs))
	for _, p := range programs {
		out = append(out, dto.ProgramOutput{ID: p.ID, Name: p.Name, Type: p.Type, CatalogYearID: p.CatalogYearID})
	}
	return out, nil
}

func (s *CatalogService) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := s.gateway.Subjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	sort.Strings(subjects)
	return subjects, nil
}

func (s *CatalogService) Advisors(ctx context.Context) ([]dto.AdvisorOutput, error) {
	advisors, err := s.gateway.Advisors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load advisors: %w", err)
	}
	out := make([]dto.AdvisorOutput, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, dto.AdvisorOutput{ID: a.ID, Name: a.Name(), Email: a.Email})
	}
	return out, nil
}

func (s *CatalogService) Search(ctx context.Context, input dto.SearchInput) ([]dto.CourseOutput, error) {
	query := domain.SearchQuery{Text: input.Query, Subject: input.Subject, Level: input.Level}.Normalize()
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	courses, err := s.gateway.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return CourseOutputs(courses), nil
}

// FindCourse resolves an exact subject and catalog number through search.
func (s *CatalogService) FindCourse(ctx context.Context, subject, cataNum string) (domain.Course, bool, error) {
	courses, err := s.gateway.Search(ctx, domain.SearchQuery{Text: subject + " " + cataNum, Subject: subject})
	if err != nil {
		return domain.Course{}, false, fmt.Errorf("search courses: %w", err)
	}
	for _, c := range courses {
		if c.Matches(subject, cataNum) {
			return c, true, nil
		}
	}
	return domain.Course{}, false, nil
}

func (s *CatalogService) CurrentMajor(ctx context.Context, studentID int64) (dto.MajorOutput, error) {
	if studentID <= 0 {
		return dto.MajorOutput{}, apperrors.ErrNotSignedIn
	}
	program, ok, err := s.gateway.CurrentMajor(ctx, studentID)
	if err != nil {
		return dto.MajorOutput{}, fmt.Errorf("load major: %w", err)
	}
	if !ok {
		return dto.MajorOutput{}, nil
	}
	return dto.MajorOutput{ID: program.ID, Name: program.Name, Type: program.Type}, nil
}

func (s *CatalogService) SaveMajor(ctx context.Context, input dto.SaveMajorInput) error {
	if input.StudentID <= 0 {
		return apperrors.ErrNotSignedIn
	}
	if input.ProgramID <= 0 {
		return fmt.Errorf("%w: pick a major", apperrors.ErrInvalidInput)
	}
	if err := s.gateway.SaveMajor(ctx, input.StudentID, input.ProgramID); err != nil {
		return fmt.Errorf("save major: %w", err)
	}
	return nil
}

func CourseOutputs(courses []domain.Course) []dto.CourseOutput {
	out := make([]dto.CourseOutput, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseOutput{
			ID:      c.ID,
			Subject: c.Subject,
			CataNum: c.CataNum,
			Code:    c.Code(),
			Title:   c.Title,
			Credits: c.Credits,
		})
	}
	return out
}
