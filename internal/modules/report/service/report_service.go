package service

import (
	"context"
	"fmt"
	"strings"

	"planwise/internal/modules/report/domain"
	"planwise/internal/modules/report/dto"
	reportout "planwise/internal/modules/report/port/out"
	"planwise/internal/platform/clock"
	apperrors "planwise/internal/platform/errors"
)

type ReportService struct {
	clock clock.Clock
	store reportout.Store
}

func NewReportService(clock clock.Clock, store reportout.Store) *ReportService {
	return &ReportService{clock: clock, store: store}
}

// Stamp sets the generation time.
func (s *ReportService) Stamp(report domain.Report) domain.Report {
	report.GeneratedAt = s.clock.Now()
	return report
}

func (s *ReportService) Save(ctx context.Context, dir string, report domain.Report) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("%w: export dir is required", apperrors.ErrInvalidInput)
	}
	path, err := s.store.Save(ctx, dir, report)
	if err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}
	return path, nil
}

func Output(report domain.Report) dto.ReportOutput {
	return dto.ReportOutput{
		StudentID:   report.StudentID,
		PlanID:      report.PlanID,
		FileName:    report.FileName(),
		Markdown:    report.Body(),
		Credits:     report.Summary.Credits,
		GPAText:     report.Summary.GPAText,
		Standing:    report.Summary.Standing,
		PlanItems:   len(report.Plan),
		Sections:    len(report.Schedule),
		Unavailable: report.Unavailable,
		GeneratedAt: report.GeneratedAt,
	}
}
