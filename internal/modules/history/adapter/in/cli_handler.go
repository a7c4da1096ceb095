package in

import (
	"context"

	historydto "planwise/internal/modules/history/dto"
	historyin "planwise/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, studentID int64) ([]historydto.CompletedCourseOutput, error) {
	return h.usecase.List(ctx, studentID)
}

func (h CLIHandler) Summary(ctx context.Context, studentID int64) (historydto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, studentID)
}

func (h CLIHandler) UpdateGrade(ctx context.Context, studentID, enrollID int64, grade string) error {
	return h.usecase.UpdateGrade(ctx, historydto.UpdateGradeInput{StudentID: studentID, EnrollID: enrollID, Grade: grade})
}

func (h CLIHandler) Remove(ctx context.Context, studentID, enrollID int64) error {
	return h.usecase.Remove(ctx, historydto.RemoveInput{StudentID: studentID, EnrollID: enrollID})
}

func (h CLIHandler) AddCompleted(ctx context.Context, studentID, courseID int64, grade string) error {
	return h.usecase.AddCompleted(ctx, historydto.AddCompletedInput{StudentID: studentID, CourseID: courseID, Grade: grade})
}

func (h CLIHandler) ImportTranscript(ctx context.Context, studentID int64, path string, dryRun bool) (historydto.ImportTranscriptOutput, error) {
	return h.usecase.ImportTranscript(ctx, historydto.ImportTranscriptInput{StudentID: studentID, Path: path, DryRun: dryRun})
}
