package dto

import (
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavePlanRequest upserts the financial plan for one month. The yearmonth
// binding rule is registered in handlers.RegisterCustomValidations.
type SavePlanRequest struct {
	Month   string          `json:"month" binding:"required,yearmonth"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ToInput converts the request into the domain intake form.
func (r SavePlanRequest) ToInput() domain.PlanInput {
	return domain.PlanInput{Month: r.Month, Income: r.Income, Expense: r.Expense}
}

// PlanSnapshotRequest is a complete replacement push of the plan collection.
type PlanSnapshotRequest struct {
	Plans []SavePlanRequest `json:"plans" binding:"required"`
}

// PlanResponse defines the structure for API responses containing plan details.
type PlanResponse struct {
	PlanID  string          `json:"planID"`
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ToPlanResponse converts a domain.FinancialPlan to its response DTO.
func ToPlanResponse(plan *domain.FinancialPlan) PlanResponse {
	return PlanResponse{
		PlanID:  plan.PlanID,
		Month:   plan.Month,
		Income:  plan.Income,
		Expense: plan.Expense,
	}
}

// ToListPlanResponse converts a slice of domain plans.
func ToListPlanResponse(plans []domain.FinancialPlan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToPlanResponse(&plans[i])
	}
	return responses
}
