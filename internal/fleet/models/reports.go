package models

import (
	"github.com/shopspring/decimal"
)

// DriverTransportCount is a report row pairing a driver with the
// number of transports assigned to them. Drivers with no transports
// appear with a zero count.
type DriverTransportCount struct {
	DriverID       uint
	FirstName      string
	LastName       string
	TransportCount int64
}

// DriverRevenue is a report row pairing a driver with the revenue
// (PAID transports only) they generated.
type DriverRevenue struct {
	DriverID  uint
	FirstName string
	LastName  string
	Revenue   decimal.Decimal
}

// CompanyRevenue is a report row pairing a company with the revenue
// (PAID transports only) attributed to it via the transport's company
// relation.
type CompanyRevenue struct {
	CompanyID uint
	Name      string
	Revenue   decimal.Decimal
}
