package in

import (
	"context"

	catalogdto "planwise/internal/modules/catalog/dto"
	catalogin "planwise/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Programs(ctx context.Context) ([]catalogdto.ProgramOutput, error) {
	return h.usecase.Programs(ctx)
}

func (h CLIHandler) Subjects(ctx context.Context) ([]string, error) {
	return h.usecase.Subjects(ctx)
}

func (h CLIHandler) Advisors(ctx context.Context) ([]catalogdto.AdvisorOutput, error) {
	return h.usecase.Advisors(ctx)
}

func (h CLIHandler) Search(ctx context.Context, query, subject, level string) ([]catalogdto.CourseOutput, error) {
	return h.usecase.Search(ctx, catalogdto.SearchInput{Query: query, Subject: subject, Level: level})
}

func (h CLIHandler) CurrentMajor(ctx context.Context, studentID int64) (catalogdto.MajorOutput, error) {
	return h.usecase.CurrentMajor(ctx, studentID)
}

func (h CLIHandler) SaveMajor(ctx context.Context, studentID, programID int64) error {
	return h.usecase.SaveMajor(ctx, catalogdto.SaveMajorInput{StudentID: studentID, ProgramID: programID})
}
