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

// RateRepository persists the single last-known exchange rate.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a rate fallback repository over an open database.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

var _ portsrepo.RateRepositoryFacade = (*RateRepository)(nil)

// FindCachedRate reads the fallback slot, returning apperrors.ErrNotFound
// when nothing was ever stored.
func (r *RateRepository) FindCachedRate(ctx context.Context) (*domain.UsdRate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT rate, as_of, fetched_at FROM rate_cache WHERE id = 1`)

	var rateStr, asOfStr, fetchedStr string
	if err := row.Scan(&rateStr, &asOfStr, &fetchedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cached rate: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read cached rate: %w", err)
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("parse cached rate value %q: %w", rateStr, err)
	}
	asOf, err := time.Parse(time.RFC3339, asOfStr)
	if err != nil {
		return nil, fmt.Errorf("parse cached rate as-of %q: %w", asOfStr, err)
	}
	fetchedAt, err := time.Parse(time.RFC3339, fetchedStr)
	if err != nil {
		return nil, fmt.Errorf("parse cached rate timestamp %q: %w", fetchedStr, err)
	}

	return &domain.UsdRate{Rate: rate, AsOf: asOf, FetchedAt: fetchedAt}, nil
}

// SaveRate upserts the fallback slot with a freshly fetched rate.
func (r *RateRepository) SaveRate(ctx context.Context, rate domain.UsdRate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rate_cache (id, rate, as_of, fetched_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET rate = excluded.rate, as_of = excluded.as_of, fetched_at = excluded.fetched_at`,
		rate.Rate.String(),
		rate.AsOf.Format(time.RFC3339),
		rate.FetchedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save cached rate: %w", err)
	}
	return nil
}
