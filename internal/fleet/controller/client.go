package controller

import (
	"context"
	"errors"
	"fmt"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
)

// CreateClient adds a new client and fires a creation event.
func (s *Service) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if client.FirstName == "" || client.LastName == "" {
		return nil, fmt.Errorf("%w: client first and last name are required", e.ErrInvalidInput)
	}

	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	go func() {
		s.producer.Produce(events.ClientCreated, formatID(client.ID), client)
	}()
	return client, nil
}

// GetClient retrieves a client by ID.
func (s *Service) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// ListClients returns all clients.
func (s *Service) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.repo.GetAllClients(ctx)
}

// DeleteClient removes a client by ID, restricting while transports
// still reference it.
func (s *Service) DeleteClient(ctx context.Context, id uint) error {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get client for deletion: %w", err)
	}

	if err := s.repo.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, e.ErrInUse) || errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	go func() {
		s.producer.Produce(events.ClientDeleted, formatID(id), client)
	}()
	return nil
}
