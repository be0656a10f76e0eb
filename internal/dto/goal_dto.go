package dto

import (
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveGoalRequest sets the savings goal target.
type SaveGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the structure for API responses containing the goal.
type GoalResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToGoalResponse converts a domain.SavingsGoal to its response DTO.
func ToGoalResponse(goal *domain.SavingsGoal) GoalResponse {
	return GoalResponse{Amount: goal.Amount}
}
