package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

const goalSettingKey = "savings_goal"

// GoalRepository persists the savings goal in the settings table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a goal repository over an open database.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

var _ portsrepo.GoalRepositoryFacade = (*GoalRepository)(nil)

// FindGoal reads the stored goal, returning apperrors.ErrNotFound when no
// goal was ever saved.
func (r *GoalRepository) FindGoal(ctx context.Context) (*domain.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM settings WHERE key = ?`, goalSettingKey)

	var valueStr, updatedStr string
	if err := row.Scan(&valueStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("savings goal: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read savings goal: %w", err)
	}

	amount, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("parse savings goal value %q: %w", valueStr, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parse savings goal timestamp %q: %w", updatedStr, err)
	}

	return &domain.SavingsGoal{
		Amount:      amount,
		AuditFields: domain.AuditFields{CreatedAt: updatedAt, LastUpdatedAt: updatedAt},
	}, nil
}

// SaveGoal upserts the goal setting.
func (r *GoalRepository) SaveGoal(ctx context.Context, goal domain.SavingsGoal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		goalSettingKey,
		goal.Amount.String(),
		goal.LastUpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save savings goal: %w", err)
	}
	return nil
}
