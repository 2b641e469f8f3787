package controller

import (
	"context"
	"errors"
	"fmt"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
)

// CreateTransport validates a candidate transport against the business
// rules and persists it on success. Checks run in a fixed order and
// the first failing check wins; nothing is written on failure.
//
// Rules:
//  1. Company, client, driver and vehicle relations are all required.
//  2. A passenger transport must use a bus; more than 12 passengers
//     additionally require the PASSENGERS_OVER_12 qualification
//     (exactly 12 does not).
//  3. A cargo transport must use a truck or a tanker; a flammable
//     tanker additionally requires the SPECIAL_CARGO qualification.
//
// The driver's, vehicle's and transport's companies are not checked
// for agreement.
func (s *Service) CreateTransport(ctx context.Context, transport *models.Transport) (*models.Transport, error) {
	if transport.CompanyID == 0 || transport.ClientID == 0 ||
		transport.DriverID == 0 || transport.VehicleID == 0 {
		return nil, fmt.Errorf("%w: company, client, driver and vehicle are required for transport", e.ErrMissingRequiredData)
	}
	if !transport.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transport kind %q", e.ErrInvalidInput, transport.Kind)
	}
	if transport.PaymentStatus == "" {
		transport.PaymentStatus = models.Unpaid
	}
	if !transport.PaymentStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", e.ErrInvalidInput, transport.PaymentStatus)
	}

	driver, err := s.repo.GetDriver(ctx, transport.DriverID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: driver %d", e.ErrNotFound, transport.DriverID)
		}
		return nil, fmt.Errorf("failed to load driver: %w", err)
	}
	vehicle, err := s.repo.GetVehicle(ctx, transport.VehicleID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: vehicle %d", e.ErrNotFound, transport.VehicleID)
		}
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	if err := validateTransport(transport, driver, vehicle); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransport(ctx, transport); err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}
	go func() {
		s.producer.Produce(events.TransportCreated, formatID(transport.ID), transport)
	}()
	return transport, nil
}

// validateTransport is the pure decision function over the candidate's
// kind and its driver/vehicle rows.
func validateTransport(transport *models.Transport, driver *models.Employee, vehicle *models.Vehicle) error {
	switch transport.Kind {
	case models.TransportPassenger:
		if vehicle.Kind != models.VehicleBus {
			return fmt.Errorf("%w: passenger transport must use a bus", e.ErrInvalidVehicle)
		}
		// Exactly 12 passengers does not require the qualification.
		if transport.PassengerCount > 12 && !driver.HasQualification(models.PassengersOver12) {
			return fmt.Errorf("%w: driver must have %s qualification for more than 12 passengers",
				e.ErrDriverQualification, models.PassengersOver12)
		}
	case models.TransportCargo:
		if vehicle.Kind != models.VehicleTruck && vehicle.Kind != models.VehicleTanker {
			return fmt.Errorf("%w: cargo transport must use a truck or a tanker", e.ErrInvalidVehicle)
		}
		if vehicle.Kind == models.VehicleTanker && vehicle.Flammable &&
			!driver.HasQualification(models.SpecialCargo) {
			return fmt.Errorf("%w: driver must have %s qualification for flammable cargo",
				e.ErrDriverQualification, models.SpecialCargo)
		}
	}
	return nil
}

// GetTransport retrieves a transport by ID.
func (s *Service) GetTransport(ctx context.Context, id uint) (*models.Transport, error) {
	transport, err := s.repo.GetTransport(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transport: %w", err)
	}
	return transport, nil
}

// ListTransports returns all transports, optionally ordered by
// destination.
func (s *Service) ListTransports(ctx context.Context, sortedByDestination bool) ([]models.Transport, error) {
	if sortedByDestination {
		return s.repo.GetTransportsSortedByDestination(ctx)
	}
	return s.repo.GetAllTransports(ctx)
}

// SetPaymentStatus replaces a transport's payment status. Status
// changes deliberately bypass transport validation: they never
// re-trigger vehicle or qualification checks.
func (s *Service) SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Transport, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", e.ErrInvalidInput, status)
	}
	if err := s.repo.SetPaymentStatus(ctx, id, status); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set payment status: %w", err)
	}

	updated, err := s.repo.GetTransport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transport after status change: %w", err)
	}
	eventType := events.TransportUnpaid
	if status == models.Paid {
		eventType = events.TransportPaid
	}
	go func() {
		s.producer.Produce(eventType, formatID(id), updated)
	}()
	return updated, nil
}

// DeleteTransport removes a transport by ID.
func (s *Service) DeleteTransport(ctx context.Context, id uint) error {
	transport, err := s.repo.GetTransport(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get transport for deletion: %w", err)
	}

	if err := s.repo.DeleteTransport(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transport: %w", err)
	}

	go func() {
		s.producer.Produce(events.TransportDeleted, formatID(id), transport)
	}()
	return nil
}
