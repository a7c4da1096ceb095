package in

import "planwise/internal/modules/navigation/dto"

type Usecase interface {
	Pages() []dto.PageOutput
	Navigate(path string, state dto.StateInput) dto.ViewOutput
	Back(state dto.StateInput) dto.ViewOutput
	Forward(state dto.StateInput) dto.ViewOutput
	Refresh(state dto.StateInput) dto.ViewOutput
	Current(state dto.StateInput) dto.ViewOutput
	IsCurrent(generation uint64) bool
}
