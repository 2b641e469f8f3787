package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleKind tags the concrete vehicle variant.
type VehicleKind string

const (
	VehicleBus    VehicleKind = "BUS"
	VehicleTruck  VehicleKind = "TRUCK"
	VehicleTanker VehicleKind = "TANKER"
)

// Valid reports whether k is a known vehicle kind.
func (k VehicleKind) Valid() bool {
	switch k {
	case VehicleBus, VehicleTruck, VehicleTanker:
		return true
	}
	return false
}

// Vehicle represents a vehicle owned by a company. Subtype columns
// (Seats, MaxLoadKg, MaxLiters, Flammable) are meaningful only for
// the matching kind.
type Vehicle struct {
	ID                 uint        `gorm:"primaryKey"`
	RegistrationNumber string      `gorm:"size:32;uniqueIndex;not null"`
	Brand              string
	Model              string
	CompanyID          uint        `gorm:"not null;index"`
	Kind               VehicleKind `gorm:"size:16;not null"`

	// Bus
	Seats int
	// Truck
	MaxLoadKg decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Tanker
	MaxLiters decimal.Decimal `gorm:"type:decimal(12,2)"`
	Flammable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
