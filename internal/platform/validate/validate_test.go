package validate_test

import (
	"errors"
	"strings"
	"testing"

	apperrors "planwise/internal/platform/errors"
	"planwise/internal/platform/validate"
)

type gradeInput struct {
	StudentID int64  `json:"stu_id" validate:"gt=0"`
	Grade     string `json:"grade" validate:"required,oneof=A B C"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()
	if err := validate.Struct(gradeInput{StudentID: 1, Grade: "A"}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestStructUsesJSONNamesAndInvalidInput(t *testing.T) {
	t.Parallel()
	err := validate.Struct(gradeInput{Grade: "Z"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "stu_id must be set") {
		t.Fatalf("expected stu_id message, got %s", msg)
	}
	if !strings.Contains(msg, "grade must be one of [A B C]") {
		t.Fatalf("expected oneof message, got %s", msg)
	}
}

func TestStructRequired(t *testing.T) {
	t.Parallel()
	err := validate.Struct(gradeInput{StudentID: 2})
	if err == nil || !strings.Contains(err.Error(), "grade is required") {
		t.Fatalf("expected required message, got %v", err)
	}
}
