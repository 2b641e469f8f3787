package controller

import (
	"context"
	"errors"
	"fmt"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
)

// CreateEmployee adds a new employee or driver. The company relation
// is required; qualifications are accepted only for drivers.
func (s *Service) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee.FirstName == "" || employee.LastName == "" {
		return nil, fmt.Errorf("%w: employee first and last name are required", e.ErrInvalidInput)
	}
	if employee.CompanyID == 0 {
		return nil, fmt.Errorf("%w: employee company is required", e.ErrInvalidInput)
	}
	if employee.Role == "" {
		employee.Role = models.RoleEmployee
	}
	if employee.Role != models.RoleEmployee && employee.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, employee.Role)
	}
	if len(employee.Qualifications) > 0 && employee.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: qualifications are only valid for drivers", e.ErrInvalidInput)
	}
	for _, q := range employee.Qualifications {
		if !q.Qualification.Valid() {
			return nil, fmt.Errorf("%w: unknown qualification %q", e.ErrInvalidInput, q.Qualification)
		}
	}
	if _, err := s.repo.GetCompany(ctx, employee.CompanyID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check employee company: %w", err)
	}

	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	go func() {
		s.producer.Produce(events.EmployeeCreated, formatID(employee.ID), employee)
	}()
	return employee, nil
}

// GetEmployee retrieves an employee by ID with qualifications loaded.
func (s *Service) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListEmployees returns all employees.
func (s *Service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.repo.GetAllEmployees(ctx)
}

// ListDrivers returns all drivers, optionally ordered by salary
// ascending.
func (s *Service) ListDrivers(ctx context.Context, sortedBySalary bool) ([]models.Employee, error) {
	if sortedBySalary {
		return s.repo.GetDriversSortedBySalaryAsc(ctx)
	}
	return s.repo.GetAllDrivers(ctx)
}

// ListDriversWithQualification returns the drivers holding q.
func (s *Service) ListDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: unknown qualification %q", e.ErrInvalidInput, q)
	}
	return s.repo.GetDriversWithQualification(ctx, q)
}

// AddQualification adds q to a driver's qualification set. Adding a
// qualification the driver already holds is a no-op.
func (s *Service) AddQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if !q.Valid() {
		return fmt.Errorf("%w: unknown qualification %q", e.ErrInvalidInput, q)
	}
	if err := s.repo.AddQualification(ctx, driverID, q); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to add qualification: %w", err)
	}
	return nil
}

// RemoveQualification removes q from a driver's qualification set.
func (s *Service) RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if !q.Valid() {
		return fmt.Errorf("%w: unknown qualification %q", e.ErrInvalidInput, q)
	}
	if err := s.repo.RemoveQualification(ctx, driverID, q); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove qualification: %w", err)
	}
	return nil
}

// DeleteEmployee removes an employee by ID, restricting while
// transports still reference them as driver.
func (s *Service) DeleteEmployee(ctx context.Context, id uint) error {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee for deletion: %w", err)
	}

	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, e.ErrInUse) || errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	go func() {
		s.producer.Produce(events.EmployeeDeleted, formatID(id), employee)
	}()
	return nil
}
