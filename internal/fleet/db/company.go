package db

import (
	"context"
	"errors"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &company, nil
}

func (r *Repository) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Find(&companies)
	return companies, result.Error
}

// GetCompaniesSortedByName returns all companies ordered by name
// ascending. Tie order is stable by id.
func (r *Repository) GetCompaniesSortedByName(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&companies)
	return companies, result.Error
}

// UpdateCompanyName replaces the company's name. The rename is a
// narrow whole-value update and is not re-validated beyond uniqueness.
func (r *Repository) UpdateCompanyName(ctx context.Context, id uint, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteCompany removes a company. Deletion restricts: it fails with
// ErrInUse while employees, vehicles or transports still reference the
// company.
func (r *Repository) DeleteCompany(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		for _, m := range []interface{}{&models.Employee{}, &models.Vehicle{}, &models.Transport{}} {
			var count int64
			if err := repo.db.Model(m).Where("company_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return e.ErrInUse
			}
		}
		result := repo.db.Delete(&models.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) CompanyExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
