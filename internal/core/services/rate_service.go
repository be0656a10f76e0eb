package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

const rateFlightKey = "usd-rub"

// rateService implements the RateSvcFacade interface: an age-bounded
// in-memory cache in front of the external quote source, with a durable
// local fallback slot and single-flight request coalescing.
type rateService struct {
	BaseService
	source   portsrepo.RateSource
	rateRepo portsrepo.RateRepositoryFacade
	ttl      time.Duration
	now      func() time.Time

	flight singleflight.Group

	mu     sync.Mutex
	cached *domain.UsdRate
}

// RateServiceOption is a functional option for configuring the rate service.
type RateServiceOption func(*rateService)

// WithRateTTL overrides the default freshness window.
func WithRateTTL(ttl time.Duration) RateServiceOption {
	return func(s *rateService) {
		s.ttl = ttl
	}
}

// WithRateClock overrides the clock; used by tests.
func WithRateClock(now func() time.Time) RateServiceOption {
	return func(s *rateService) {
		s.now = now
	}
}

// NewRateService creates a new rate service.
func NewRateService(source portsrepo.RateSource, rateRepo portsrepo.RateRepositoryFacade, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		source:   source,
		rateRepo: rateRepo,
		ttl:      domain.DefaultRateTTL,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// TTL is the freshness window applied to cached rates.
func (s *rateService) TTL() time.Duration {
	return s.ttl
}

// GetRate returns the current rate. A fresh cached value is returned without
// any I/O; otherwise all concurrent callers share a single refresh. Fetch
// failures fall back to the last known value (memory, then durable slot),
// even expired, and only surface ErrRateUnavailable when nothing exists.
func (s *rateService) GetRate(ctx context.Context) (*domain.UsdRate, error) {
	s.mu.Lock()
	cached := s.cached
	s.mu.Unlock()
	if cached != nil && cached.Fresh(s.now(), s.ttl) {
		return cached, nil
	}

	// Fetches run to completion regardless of the triggering caller; a
	// caller that stops caring simply ignores the shared outcome.
	v, err, _ := s.flight.Do(rateFlightKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.UsdRate), nil
}

func (s *rateService) refresh(ctx context.Context) (*domain.UsdRate, error) {
	now := s.now()

	// The durable slot may have been written by an earlier process run.
	stored, storedErr := s.rateRepo.FindCachedRate(ctx)
	if storedErr != nil && !errors.Is(storedErr, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Failed to read rate fallback store", slog.String("error", storedErr.Error()))
	}
	if stored != nil && stored.Fresh(now, s.ttl) {
		s.setCached(stored)
		return stored, nil
	}

	rate, err := s.source.FetchRate(ctx)
	if err == nil {
		rate.FetchedAt = now
		if saveErr := s.rateRepo.SaveRate(ctx, *rate); saveErr != nil {
			// Degraded durability only; the fetched rate is still good.
			s.LogWarn(ctx, "Failed to persist rate to fallback store", slog.String("error", saveErr.Error()))
		}
		s.setCached(rate)
		s.LogInfo(ctx, "Exchange rate refreshed",
			slog.String("rate", rate.Rate.String()),
			slog.Time("as_of", rate.AsOf))
		return rate, nil
	}

	// Degraded path: any previously known rate beats no rate at all.
	s.mu.Lock()
	cached := s.cached
	s.mu.Unlock()
	if cached != nil {
		s.LogWarn(ctx, "Rate fetch failed, serving expired in-memory rate",
			slog.String("error", err.Error()),
			slog.Time("fetched_at", cached.FetchedAt))
		return cached, nil
	}
	if stored != nil {
		s.LogWarn(ctx, "Rate fetch failed, serving expired stored rate",
			slog.String("error", err.Error()),
			slog.Time("fetched_at", stored.FetchedAt))
		s.setCached(stored)
		return stored, nil
	}

	return nil, fmt.Errorf("%w: fetch failed and no fallback exists: %v", apperrors.ErrRateUnavailable, err)
}

func (s *rateService) setCached(rate *domain.UsdRate) {
	s.mu.Lock()
	s.cached = rate
	s.mu.Unlock()
}
