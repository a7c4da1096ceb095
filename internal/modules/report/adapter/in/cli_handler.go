package in

import (
	"context"

	reportdto "planwise/internal/modules/report/dto"
	reportin "planwise/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Build(ctx context.Context, input reportdto.BuildInput) (reportdto.ReportOutput, error) {
	return h.usecase.Build(ctx, input)
}

func (h CLIHandler) Export(ctx context.Context, input reportdto.BuildInput, dir string) (reportdto.ExportOutput, error) {
	return h.usecase.Export(ctx, reportdto.ExportInput{BuildInput: input, Dir: dir})
}
