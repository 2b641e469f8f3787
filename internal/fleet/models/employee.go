package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role distinguishes drivers from other company staff.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleDriver   Role = "DRIVER"
)

// Qualification is a capability flag on a driver gating certain
// transport configurations.
type Qualification string

const (
	// PassengersOver12 allows driving passenger transports with more
	// than 12 passengers.
	PassengersOver12 Qualification = "PASSENGERS_OVER_12"
	// SpecialCargo allows transporting flammable/special cargo.
	SpecialCargo Qualification = "SPECIAL_CARGO"
)

// Valid reports whether q is a known qualification.
func (q Qualification) Valid() bool {
	return q == PassengersOver12 || q == SpecialCargo
}

// Employee represents company staff. A driver is an employee with
// RoleDriver and a qualification set. Qualifications are loaded
// eagerly whenever a driver is fetched.
type Employee struct {
	ID             uint `gorm:"primaryKey"`
	FirstName      string
	LastName       string
	Salary         decimal.Decimal `gorm:"type:decimal(12,2)"`
	CompanyID      uint            `gorm:"not null;index"`
	Role           Role            `gorm:"size:16;not null;default:EMPLOYEE;index"`
	Qualifications []DriverQualification `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DriverQualification is one row of a driver's qualification set.
// The composite primary key gives the set its membership-only semantics.
type DriverQualification struct {
	DriverID      uint          `gorm:"primaryKey;autoIncrement:false"`
	Qualification Qualification `gorm:"primaryKey;size:32"`
}

// FullName returns the employee's "first last" display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsDriver reports whether the employee is a driver.
func (e *Employee) IsDriver() bool {
	return e.Role == RoleDriver
}

// HasQualification reports whether the driver's qualification set
// contains q.
func (e *Employee) HasQualification(q Qualification) bool {
	for _, dq := range e.Qualifications {
		if dq.Qualification == q {
			return true
		}
	}
	return false
}
