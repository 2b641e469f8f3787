package db

import (
	"context"
	"errors"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *Repository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	result := r.db.WithContext(ctx).First(&client, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &client, nil
}

func (r *Repository) GetAllClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	result := r.db.WithContext(ctx).Find(&clients)
	return clients, result.Error
}

// DeleteClient removes a client, restricting while transports still
// reference it.
func (r *Repository) DeleteClient(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		var count int64
		if err := repo.db.Model(&models.Transport{}).Where("client_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return e.ErrInUse
		}
		result := repo.db.Delete(&models.Client{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
