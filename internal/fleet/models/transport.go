package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks whether a transport has been paid for. Only
// PAID transports count toward revenue.
type PaymentStatus string

const (
	Paid   PaymentStatus = "PAID"
	Unpaid PaymentStatus = "UNPAID"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == Paid || s == Unpaid
}

// TransportKind tags the concrete transport variant.
type TransportKind string

const (
	TransportPassenger TransportKind = "PASSENGER"
	TransportCargo     TransportKind = "CARGO"
)

// Valid reports whether k is a known transport kind.
func (k TransportKind) Valid() bool {
	return k == TransportPassenger || k == TransportCargo
}

// TypeName returns the exported type name used in the JSON export.
func (k TransportKind) TypeName() string {
	if k == TransportPassenger {
		return "PassengerTransport"
	}
	return "CargoTransport"
}

// Transport is a single scheduled service instance linking a company,
// client, driver and vehicle. PassengerCount and CargoWeightKg are
// meaningful only for the matching kind.
type Transport struct {
	ID            uint `gorm:"primaryKey"`
	CompanyID     uint `gorm:"not null;index"`
	ClientID      uint `gorm:"not null;index"`
	DriverID      uint `gorm:"not null;index"`
	VehicleID     uint `gorm:"not null;index"`
	Destination   string
	TransportDate time.Time       `gorm:"type:date"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaymentStatus PaymentStatus   `gorm:"size:16;not null;default:UNPAID"`
	Kind          TransportKind   `gorm:"size:16;not null"`

	// Passenger transport
	PassengerCount int
	// Cargo transport
	CargoWeightKg decimal.Decimal `gorm:"type:decimal(12,2)"`

	Company *Company  `gorm:"foreignKey:CompanyID"`
	Client  *Client   `gorm:"foreignKey:ClientID"`
	Driver  *Employee `gorm:"foreignKey:DriverID"`
	Vehicle *Vehicle  `gorm:"foreignKey:VehicleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
