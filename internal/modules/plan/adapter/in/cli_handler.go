package in

import (
	"context"

	plandto "planwise/internal/modules/plan/dto"
	planin "planwise/internal/modules/plan/port/in"
)

type CLIHandler struct {
	usecase planin.Usecase
}

func NewCLIHandler(usecase planin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context, planID int64) (plandto.PlanOutput, error) {
	return h.usecase.Get(ctx, planID)
}

func (h CLIHandler) AddCourse(ctx context.Context, planID, courseID, termID int64) (plandto.AddCourseOutput, error) {
	return h.usecase.AddCourse(ctx, plandto.AddCourseInput{PlanID: planID, CourseID: courseID, TermID: termID})
}

func (h CLIHandler) Remove(ctx context.Context, pcID int64) error {
	return h.usecase.Remove(ctx, plandto.RemoveInput{PCID: pcID})
}

func (h CLIHandler) Recommendations(ctx context.Context, studentID, planID int64) ([]plandto.CourseOutput, error) {
	return h.usecase.Recommendations(ctx, plandto.RecommendationsInput{StudentID: studentID, PlanID: planID})
}

func (h CLIHandler) MissingPrereqs(ctx context.Context, studentID, courseID int64) ([]plandto.MissingPrereqOutput, error) {
	return h.usecase.MissingPrereqs(ctx, plandto.MissingPrereqsInput{StudentID: studentID, CourseID: courseID})
}
