package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	plandto "planwise/internal/modules/plan/dto"
	planin "planwise/internal/modules/plan/port/in"
	"planwise/internal/modules/plugin/dto"
	pluginin "planwise/internal/modules/plugin/port/in"
	"planwise/internal/modules/plugin/service"
)

type Interactor struct {
	svc  *service.PluginService
	plan planin.Usecase
}

func NewInteractor(svc *service.PluginService, plan planin.Usecase) pluginin.Usecase {
	return &Interactor{svc: svc, plan: plan}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return i.svc.Execute(ctx, input)
}

func (i *Interactor) Audit(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	if input.InputJSON == "" && input.PlanID > 0 && i.plan != nil {
		plan, err := i.plan.Get(ctx, input.PlanID)
		if err != nil {
			return dto.ExecuteOutput{}, fmt.Errorf("load plan for audit: %w", err)
		}
		raw, err := json.Marshal(auditInput(plan))
		if err != nil {
			return dto.ExecuteOutput{}, fmt.Errorf("encode plan for audit: %w", err)
		}
		input.InputJSON = string(raw)
	}
	return i.svc.Audit(ctx, input)
}

type auditItem struct {
	Term        string  `json:"term"`
	Course      string  `json:"course"`
	Title       string  `json:"title"`
	Credits     float64 `json:"credits"`
	Recommended bool    `json:"recommended"`
}

type auditPlan struct {
	PlanID       int64       `json:"plan_id"`
	TotalCredits float64     `json:"total_credits"`
	Items        []auditItem `json:"items"`
}

func auditInput(plan plandto.PlanOutput) auditPlan {
	out := auditPlan{PlanID: plan.PlanID, TotalCredits: plan.TotalCredits, Items: make([]auditItem, 0, len(plan.Items))}
	for _, item := range plan.Items {
		out.Items = append(out.Items, auditItem{
			Term:        item.TermCode,
			Course:      item.CourseCode,
			Title:       item.Title,
			Credits:     item.Credits,
			Recommended: item.Recommended,
		})
	}
	return out
}
