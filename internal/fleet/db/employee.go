package db

import (
	"context"
	"errors"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *Repository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &employee, nil
}

func (r *Repository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").Find(&employees)
	return employees, result.Error
}

// GetDriver fetches a driver with its qualification set loaded.
// Returns ErrNotFound when the id does not belong to a driver.
func (r *Repository) GetDriver(ctx context.Context, id uint) (*models.Employee, error) {
	var driver models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").
		First(&driver, "id = ? AND role = ?", id, models.RoleDriver)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &driver, nil
}

func (r *Repository) GetAllDrivers(ctx context.Context) ([]models.Employee, error) {
	var drivers []models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").
		Where("role = ?", models.RoleDriver).
		Find(&drivers)
	return drivers, result.Error
}

// GetDriversSortedBySalaryAsc returns all drivers ordered by salary,
// lowest first. Tie order is stable by id.
func (r *Repository) GetDriversSortedBySalaryAsc(ctx context.Context) ([]models.Employee, error) {
	var drivers []models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").
		Where("role = ?", models.RoleDriver).
		Order("salary ASC, id ASC").
		Find(&drivers)
	return drivers, result.Error
}

// GetDriversWithQualification returns the drivers whose qualification
// set contains q.
func (r *Repository) GetDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error) {
	var drivers []models.Employee
	result := r.db.WithContext(ctx).Preload("Qualifications").
		Joins("JOIN driver_qualifications dq ON dq.driver_id = employees.id").
		Where("employees.role = ? AND dq.qualification = ?", models.RoleDriver, q).
		Distinct().
		Find(&drivers)
	return drivers, result.Error
}

// AddQualification adds q to the driver's qualification set. Adding an
// already held qualification is a no-op.
func (r *Repository) AddQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if _, err := r.GetDriver(ctx, driverID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.DriverQualification{DriverID: driverID, Qualification: q}).Error
}

// RemoveQualification removes q from the driver's qualification set.
func (r *Repository) RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	result := r.db.WithContext(ctx).
		Delete(&models.DriverQualification{DriverID: driverID, Qualification: q})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes an employee, restricting while transports
// still reference them as driver. The qualification set is removed
// with the row.
func (r *Repository) DeleteEmployee(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		var count int64
		if err := repo.db.Model(&models.Transport{}).Where("driver_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return e.ErrInUse
		}
		if err := repo.db.Where("driver_id = ?", id).Delete(&models.DriverQualification{}).Error; err != nil {
			return err
		}
		result := repo.db.Delete(&models.Employee{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
