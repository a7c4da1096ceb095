package in

import (
	"context"

	scheduledto "planwise/internal/modules/schedule/dto"
	schedulein "planwise/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Available(ctx context.Context, planID int64) (scheduledto.ScheduleOutput, error) {
	return h.usecase.Available(ctx, planID)
}

func (h CLIHandler) Final(ctx context.Context, studentID int64) (scheduledto.ScheduleOutput, error) {
	return h.usecase.Final(ctx, studentID)
}

func (h CLIHandler) Enroll(ctx context.Context, studentID, sectionID int64) (scheduledto.EnrollOutput, error) {
	return h.usecase.Enroll(ctx, scheduledto.SectionInput{StudentID: studentID, SectionID: sectionID})
}

func (h CLIHandler) Drop(ctx context.Context, studentID, sectionID int64) error {
	return h.usecase.Drop(ctx, scheduledto.SectionInput{StudentID: studentID, SectionID: sectionID})
}

func (h CLIHandler) Conflicts(ctx context.Context, planID int64) ([]scheduledto.ConflictOutput, error) {
	return h.usecase.Conflicts(ctx, planID)
}
