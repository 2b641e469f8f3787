package db

import (
	"context"
	"errors"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	result := r.db.WithContext(ctx).Create(vehicle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	result := r.db.WithContext(ctx).First(&vehicle, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &vehicle, nil
}

func (r *Repository) GetAllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	result := r.db.WithContext(ctx).Find(&vehicles)
	return vehicles, result.Error
}

// DeleteVehicle removes a vehicle, restricting while transports still
// reference it.
func (r *Repository) DeleteVehicle(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		var count int64
		if err := repo.db.Model(&models.Transport{}).Where("vehicle_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return e.ErrInUse
		}
		result := repo.db.Delete(&models.Vehicle{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
