package controller

import (
	"context"
	"fmt"
	"time"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"github.com/shopspring/decimal"
)

// Reporting pass-throughs. Reports are recomputed on every call so
// they never return stale data across intervening writes.

// TotalTransportsCount returns the number of transports regardless of
// payment status.
func (s *Service) TotalTransportsCount(ctx context.Context) (int64, error) {
	return s.repo.TotalTransportsCount(ctx)
}

// TotalTransportsRevenue returns the PAID-only price sum.
func (s *Service) TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalTransportsRevenue(ctx)
}

// TotalTransportsValue returns the price sum over all transports.
func (s *Service) TotalTransportsValue(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalTransportsValue(ctx)
}

// RevenueForPeriod returns the PAID-only price sum for transport dates
// in the inclusive range [from, to].
func (s *Service) RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if to.Before(from) {
		return decimal.Zero, fmt.Errorf("%w: period end precedes start", e.ErrInvalidInput)
	}
	return s.repo.RevenueForPeriod(ctx, from, to)
}

// DriversWithTransportsCount returns per-driver transport counts,
// including zero-count drivers, ordered by count descending.
func (s *Service) DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	return s.repo.DriversWithTransportsCount(ctx)
}

// DriversWithPaidTransportsCount returns per-driver PAID transport
// counts, including zero-count drivers, ordered by count descending.
func (s *Service) DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	return s.repo.DriversWithPaidTransportsCount(ctx)
}

// RevenueByDriver returns per-driver PAID revenue, including
// zero-revenue drivers, ordered by revenue descending.
func (s *Service) RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error) {
	return s.repo.RevenueByDriver(ctx)
}

// CompaniesSortedByRevenueDesc returns per-company PAID revenue,
// including zero-revenue companies, ordered by revenue descending.
func (s *Service) CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error) {
	return s.repo.CompaniesSortedByRevenueDesc(ctx)
}
