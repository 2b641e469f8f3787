package db

import (
	"context"
	"errors"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateTransport(ctx context.Context, transport *models.Transport) error {
	return r.db.WithContext(ctx).Create(transport).Error
}

func (r *Repository) GetTransport(ctx context.Context, id uint) (*models.Transport, error) {
	var transport models.Transport
	result := r.db.WithContext(ctx).First(&transport, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &transport, nil
}

func (r *Repository) GetAllTransports(ctx context.Context) ([]models.Transport, error) {
	var transports []models.Transport
	result := r.db.WithContext(ctx).Find(&transports)
	return transports, result.Error
}

// GetTransportsExpanded returns all transports with their driver,
// vehicle and client rows loaded. Used by the export module.
func (r *Repository) GetTransportsExpanded(ctx context.Context) ([]models.Transport, error) {
	var transports []models.Transport
	result := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		Preload("Client").
		Order("id ASC").
		Find(&transports)
	return transports, result.Error
}

// GetTransportsSortedByDestination returns all transports ordered by
// destination ascending. Tie order is stable by id.
func (r *Repository) GetTransportsSortedByDestination(ctx context.Context) ([]models.Transport, error) {
	var transports []models.Transport
	result := r.db.WithContext(ctx).Order("destination ASC, id ASC").Find(&transports)
	return transports, result.Error
}

// SetPaymentStatus replaces the transport's payment status. This is a
// narrow whole-value update; business validation is not re-run.
func (r *Repository) SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Transport{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteTransport(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Transport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
