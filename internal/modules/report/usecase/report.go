package usecase

import (
	"context"

	historyin "planwise/internal/modules/history/port/in"
	planin "planwise/internal/modules/plan/port/in"
	"planwise/internal/modules/report/domain"
	reportdto "planwise/internal/modules/report/dto"
	reportin "planwise/internal/modules/report/port/in"
	"planwise/internal/modules/report/service"
	schedulein "planwise/internal/modules/schedule/port/in"
	apperrors "planwise/internal/platform/errors"
)

type Interactor struct {
	svc      *service.ReportService
	plan     planin.Usecase
	history  historyin.Usecase
	schedule schedulein.Usecase
}

func NewInteractor(svc *service.ReportService, plan planin.Usecase, history historyin.Usecase, schedule schedulein.Usecase) reportin.Usecase {
	return &Interactor{svc: svc, plan: plan, history: history, schedule: schedule}
}

func (i *Interactor) Build(ctx context.Context, input reportdto.BuildInput) (reportdto.ReportOutput, error) {
	report, err := i.build(ctx, input)
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	return service.Output(report), nil
}

func (i *Interactor) Export(ctx context.Context, input reportdto.ExportInput) (reportdto.ExportOutput, error) {
	report, err := i.build(ctx, input.BuildInput)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	path, err := i.svc.Save(ctx, input.Dir, report)
	if err != nil {
		return reportdto.ExportOutput{}, err
	}
	return reportdto.ExportOutput{Path: path, Report: service.Output(report)}, nil
}

// build needs the summary; a plan or schedule that fails to load is listed
// under Unavailable instead.
func (i *Interactor) build(ctx context.Context, input reportdto.BuildInput) (domain.Report, error) {
	if input.StudentID <= 0 {
		return domain.Report{}, apperrors.ErrNotSignedIn
	}
	report := domain.Report{
		StudentID: input.StudentID,
		PlanID:    input.PlanID,
		LoginID:   input.LoginID,
		Name:      input.Name,
	}

	summary, err := i.history.Summary(ctx, input.StudentID)
	if err != nil {
		return domain.Report{}, err
	}
	report.Summary = domain.Summary{Credits: summary.TotalCredits, GPAText: summary.GPAText, Standing: summary.Standing}

	if input.PlanID <= 0 {
		report.PlanSkipped = true
	} else if plan, err := i.plan.Get(ctx, input.PlanID); err != nil {
		report.Unavailable = append(report.Unavailable, "plan: "+err.Error())
	} else {
		report.PlanCredits = plan.TotalCredits
		for _, item := range plan.Items {
			report.Plan = append(report.Plan, domain.PlanRow{
				TermCode:    item.TermCode,
				CourseCode:  item.CourseCode,
				Title:       item.Title,
				Credits:     item.Credits,
				Recommended: item.Recommended,
			})
		}
	}

	final, err := i.schedule.Final(ctx, input.StudentID)
	if err != nil {
		report.Unavailable = append(report.Unavailable, "final schedule: "+err.Error())
	} else {
		for _, sec := range final.Sections {
			report.Schedule = append(report.Schedule, domain.ScheduleRow{
				CourseCode: sec.CourseCode,
				Title:      sec.Title,
				Days:       sec.DaysText,
				Time:       sec.TimeText,
				Location:   sec.Location,
			})
		}
	}
	return i.svc.Stamp(report), nil
}
