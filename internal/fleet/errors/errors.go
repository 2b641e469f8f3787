// Package errors defines the business error taxonomy for the fleet
// service. All of these are caller-visible, non-retryable errors;
// callers classify them with errors.Is.
package errors

import (
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup that must guarantee
	// existence (delete, targeted update) matches no row.
	ErrNotFound = fmt.Errorf("not found")

	// ErrMissingRequiredData is returned when a transport is created
	// without its company, client, driver or vehicle.
	ErrMissingRequiredData = fmt.Errorf("missing required data")

	// ErrInvalidVehicle is returned when a transport kind is paired
	// with an incompatible vehicle kind.
	ErrInvalidVehicle = fmt.Errorf("invalid vehicle for transport")

	// ErrDriverQualification is returned when the assigned driver lacks
	// a qualification required by the transport's parameters.
	ErrDriverQualification = fmt.Errorf("driver qualification missing")

	// ErrDuplicate is returned on unique constraint violations
	// (company name, vehicle registration number).
	ErrDuplicate = fmt.Errorf("duplicate value")

	// ErrInUse is returned when deleting an entity that is still
	// referenced by other rows. Deletes restrict rather than cascade.
	ErrInUse = fmt.Errorf("entity in use")

	ErrInvalidInput = fmt.Errorf("invalid input")
)
