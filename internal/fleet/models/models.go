// Package models defines the domain models for the fleet service,
// configured to work using GORM as the ORM. Former class hierarchies
// (Employee/Driver, Vehicle subtypes, Transport subtypes) are modelled
// as kind-tagged rows with subtype-specific columns.
package models

import (
	"time"
)

// Company represents a transport company. The name is unique across
// the system.
type Company struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Client represents a customer ordering transports.
type Client struct {
	ID        uint `gorm:"primaryKey"`
	FirstName string
	LastName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the client's "first last" display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
