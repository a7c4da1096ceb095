package in

import (
	"context"

	"planwise/internal/modules/report/dto"
)

type Usecase interface {
	Build(ctx context.Context, input dto.BuildInput) (dto.ReportOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
