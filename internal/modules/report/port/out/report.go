package out

import (
	"context"

	"planwise/internal/modules/report/domain"
)

type Store interface {
	Save(ctx context.Context, dir string, report domain.Report) (string, error)
}
