package in

import (
	navigationdto "planwise/internal/modules/navigation/dto"
	navigationin "planwise/internal/modules/navigation/port/in"
)

type CLIHandler struct {
	usecase navigationin.Usecase
}

func NewCLIHandler(usecase navigationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Pages() []navigationdto.PageOutput {
	return h.usecase.Pages()
}

func (h CLIHandler) Navigate(path string, studentID, planID int64) navigationdto.ViewOutput {
	return h.usecase.Navigate(path, navigationdto.StateInput{StudentID: studentID, PlanID: planID})
}

func (h CLIHandler) Back(studentID, planID int64) navigationdto.ViewOutput {
	return h.usecase.Back(navigationdto.StateInput{StudentID: studentID, PlanID: planID})
}

func (h CLIHandler) Forward(studentID, planID int64) navigationdto.ViewOutput {
	return h.usecase.Forward(navigationdto.StateInput{StudentID: studentID, PlanID: planID})
}

func (h CLIHandler) Refresh(studentID, planID int64) navigationdto.ViewOutput {
	return h.usecase.Refresh(navigationdto.StateInput{StudentID: studentID, PlanID: planID})
}

func (h CLIHandler) Current() navigationdto.ViewOutput {
	return h.usecase.Current(navigationdto.StateInput{})
}

func (h CLIHandler) IsCurrent(generation uint64) bool {
	return h.usecase.IsCurrent(generation)
}
