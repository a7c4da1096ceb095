package out

import (
	"context"

	"planwise/internal/modules/history/domain"
)

type Gateway interface {
	List(ctx context.Context, studentID int64) ([]domain.CompletedCourse, error)
	UpdateGrade(ctx context.Context, studentID, enrollID int64, grade string) error
	Remove(ctx context.Context, studentID, enrollID int64) error
	AddCompleted(ctx context.Context, studentID, courseID int64, grade string) error
}

type TranscriptReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// CourseResolver finds the catalog course id for a subject and number.
type CourseResolver interface {
	Resolve(ctx context.Context, subject, cataNum string) (int64, bool, error)
}
