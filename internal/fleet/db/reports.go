package db

import (
	"context"
	"time"

	"fleetops/internal/fleet/models"
	"github.com/shopspring/decimal"
)

// Reporting queries. Every function recomputes from the live tables on
// each call; results never include cached state. Aggregates over
// drivers and companies use left joins so zero-activity rows still
// appear with count/revenue 0.

// TotalTransportsCount returns the number of transports regardless of
// payment status.
func (r *Repository) TotalTransportsCount(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Transport{}).Count(&count)
	return count, result.Error
}

// TotalTransportsRevenue returns the sum of prices over PAID
// transports, zero when none match.
func (r *Repository) TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(price), 0) FROM transports WHERE payment_status = ?",
		models.Paid,
	).Scan(&total)
	return total, result.Error
}

// TotalTransportsValue returns the sum of prices over all transports
// regardless of payment status.
func (r *Repository) TotalTransportsValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(price), 0) FROM transports",
	).Scan(&total)
	return total, result.Error
}

// RevenueForPeriod returns the sum of prices over PAID transports with
// a transport date in the inclusive range [from, to].
func (r *Repository) RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(price), 0) FROM transports "+
			"WHERE transport_date BETWEEN ? AND ? AND payment_status = ?",
		from, to, models.Paid,
	).Scan(&total)
	return total, result.Error
}

// DriversWithTransportsCount returns every driver with the number of
// transports assigned to them, ordered by count descending. Ties break
// by driver id.
func (r *Repository) DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	var rows []models.DriverTransportCount
	result := r.db.WithContext(ctx).Raw(
		"SELECT e.id AS driver_id, e.first_name, e.last_name, COUNT(t.id) AS transport_count "+
			"FROM employees e "+
			"LEFT JOIN transports t ON t.driver_id = e.id "+
			"WHERE e.role = ? "+
			"GROUP BY e.id, e.first_name, e.last_name "+
			"ORDER BY COUNT(t.id) DESC, e.id ASC",
		models.RoleDriver,
	).Scan(&rows)
	return rows, result.Error
}

// DriversWithPaidTransportsCount returns every driver with the number
// of PAID transports assigned to them, ordered by count descending.
func (r *Repository) DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	var rows []models.DriverTransportCount
	result := r.db.WithContext(ctx).Raw(
		"SELECT e.id AS driver_id, e.first_name, e.last_name, "+
			"COALESCE(SUM(CASE WHEN t.payment_status = ? THEN 1 ELSE 0 END), 0) AS transport_count "+
			"FROM employees e "+
			"LEFT JOIN transports t ON t.driver_id = e.id "+
			"WHERE e.role = ? "+
			"GROUP BY e.id, e.first_name, e.last_name "+
			"ORDER BY transport_count DESC, e.id ASC",
		models.Paid, models.RoleDriver,
	).Scan(&rows)
	return rows, result.Error
}

// RevenueByDriver returns every driver with the revenue they generated
// over PAID transports, ordered by revenue descending.
func (r *Repository) RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error) {
	var rows []models.DriverRevenue
	result := r.db.WithContext(ctx).Raw(
		"SELECT e.id AS driver_id, e.first_name, e.last_name, "+
			"COALESCE(SUM(CASE WHEN t.payment_status = ? THEN t.price ELSE 0 END), 0) AS revenue "+
			"FROM employees e "+
			"LEFT JOIN transports t ON t.driver_id = e.id "+
			"WHERE e.role = ? "+
			"GROUP BY e.id, e.first_name, e.last_name "+
			"ORDER BY revenue DESC, e.id ASC",
		models.Paid, models.RoleDriver,
	).Scan(&rows)
	return rows, result.Error
}

// CompaniesSortedByRevenueDesc returns every company with the revenue
// attributed to it via the transport's company relation, ordered by
// revenue descending. Companies without transports appear with zero.
func (r *Repository) CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error) {
	var rows []models.CompanyRevenue
	result := r.db.WithContext(ctx).Raw(
		"SELECT c.id AS company_id, c.name, "+
			"COALESCE(SUM(CASE WHEN t.payment_status = ? THEN t.price ELSE 0 END), 0) AS revenue "+
			"FROM companies c "+
			"LEFT JOIN transports t ON t.company_id = c.id "+
			"GROUP BY c.id, c.name "+
			"ORDER BY revenue DESC, c.id ASC",
		models.Paid,
	).Scan(&rows)
	return rows, result.Error
}
