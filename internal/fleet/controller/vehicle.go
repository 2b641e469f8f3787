package controller

import (
	"context"
	"errors"
	"fmt"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
)

// CreateVehicle adds a new vehicle after validating the kind and the
// registration number, then fires a creation event.
func (s *Service) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.RegistrationNumber == "" {
		return nil, fmt.Errorf("%w: registration number is required", e.ErrInvalidInput)
	}
	if vehicle.CompanyID == 0 {
		return nil, fmt.Errorf("%w: vehicle company is required", e.ErrInvalidInput)
	}
	if !vehicle.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle kind %q", e.ErrInvalidInput, vehicle.Kind)
	}
	if _, err := s.repo.GetCompany(ctx, vehicle.CompanyID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check vehicle company: %w", err)
	}

	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, e.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	go func() {
		s.producer.Produce(events.VehicleCreated, formatID(vehicle.ID), vehicle)
	}()
	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *Service) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles returns all vehicles.
func (s *Service) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.GetAllVehicles(ctx)
}

// DeleteVehicle removes a vehicle by ID, restricting while transports
// still reference it.
func (s *Service) DeleteVehicle(ctx context.Context, id uint) error {
	vehicle, err := s.repo.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get vehicle for deletion: %w", err)
	}

	if err := s.repo.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, e.ErrInUse) || errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	go func() {
		s.producer.Produce(events.VehicleDeleted, formatID(id), vehicle)
	}()
	return nil
}
