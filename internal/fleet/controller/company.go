package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
)

// CreateCompany adds a new company after validating the name and
// checking uniqueness, then fires a creation event.
func (s *Service) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, fmt.Errorf("%w: company name is required", e.ErrInvalidInput)
	}

	exists, err := s.repo.CompanyExistsByName(ctx, company.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, e.ErrDuplicate
	}

	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	go func() {
		s.producer.Produce(events.CompanyCreated, formatID(company.ID), company)
	}()
	return company, nil
}

// GetCompany retrieves a company by ID, returning ErrNotFound if absent.
func (s *Service) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// ListCompanies returns all companies, optionally ordered by name.
func (s *Service) ListCompanies(ctx context.Context, sortedByName bool) ([]models.Company, error) {
	if sortedByName {
		return s.repo.GetCompaniesSortedByName(ctx)
	}
	return s.repo.GetAllCompanies(ctx)
}

// UpdateCompanyName renames a company. The rename is a narrow
// whole-value replacement; no other validation is re-run.
func (s *Service) UpdateCompanyName(ctx context.Context, id uint, name string) (*models.Company, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateCompanyName(ctx, id, name); err != nil {
		if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update company name: %w", err)
	}

	updated, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company after rename: %w", err)
	}
	go func() {
		s.producer.Produce(events.CompanyUpdated, formatID(updated.ID), updated)
	}()
	return updated, nil
}

// DeleteCompany removes a company by ID and fires a deletion event.
// Deletion restricts while employees, vehicles or transports still
// reference the company.
func (s *Service) DeleteCompany(ctx context.Context, id uint) error {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get company for deletion: %w", err)
	}

	if err := s.repo.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, e.ErrInUse) || errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	go func() {
		s.producer.Produce(events.CompanyDeleted, formatID(id), company)
	}()
	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
