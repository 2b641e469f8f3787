package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type createCompanyRequest struct {
	Name string `json:"name"`
}

type updateCompanyNameRequest struct {
	Name string `json:"name"`
}

type createClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type createEmployeeRequest struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Salary         decimal.Decimal `json:"salary"`
	CompanyID      uint            `json:"companyId"`
	Role           string          `json:"role"`
	Qualifications []string        `json:"qualifications"`
}

type addQualificationRequest struct {
	Qualification string `json:"qualification"`
}

type createVehicleRequest struct {
	RegistrationNumber string          `json:"registrationNumber"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	CompanyID          uint            `json:"companyId"`
	Kind               string          `json:"kind"`
	Seats              int             `json:"seats"`
	MaxLoadKg          decimal.Decimal `json:"maxLoadKg"`
	MaxLiters          decimal.Decimal `json:"maxLiters"`
	Flammable          bool            `json:"flammable"`
}

type createTransportRequest struct {
	Kind           string          `json:"kind"`
	CompanyID      uint            `json:"companyId"`
	ClientID       uint            `json:"clientId"`
	DriverID       uint            `json:"driverId"`
	VehicleID      uint            `json:"vehicleId"`
	Destination    string          `json:"destination"`
	Date           string          `json:"date"`
	Price          decimal.Decimal `json:"price"`
	PaymentStatus  string          `json:"paymentStatus"`
	PassengerCount int             `json:"passengerCount"`
	CargoWeightKg  decimal.Decimal `json:"cargoWeightKg"`
}

type setPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

type exportTransportsRequest struct {
	Path string `json:"path"`
}

type companyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type clientResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type employeeResponse struct {
	ID             uint            `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Salary         decimal.Decimal `json:"salary"`
	CompanyID      uint            `json:"companyId"`
	Role           string          `json:"role"`
	Qualifications []string        `json:"qualifications"`
}

type vehicleResponse struct {
	ID                 uint            `json:"id"`
	RegistrationNumber string          `json:"registrationNumber"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	CompanyID          uint            `json:"companyId"`
	Kind               string          `json:"kind"`
	Seats              int             `json:"seats,omitempty"`
	MaxLoadKg          decimal.Decimal `json:"maxLoadKg"`
	MaxLiters          decimal.Decimal `json:"maxLiters"`
	Flammable          bool            `json:"flammable"`
}

type transportResponse struct {
	ID             uint            `json:"id"`
	Kind           string          `json:"kind"`
	CompanyID      uint            `json:"companyId"`
	ClientID       uint            `json:"clientId"`
	DriverID       uint            `json:"driverId"`
	VehicleID      uint            `json:"vehicleId"`
	Destination    string          `json:"destination"`
	Date           string          `json:"date"`
	Price          decimal.Decimal `json:"price"`
	PaymentStatus  string          `json:"paymentStatus"`
	PassengerCount int             `json:"passengerCount,omitempty"`
	CargoWeightKg  decimal.Decimal `json:"cargoWeightKg"`
}

type summaryResponse struct {
	TotalTransports int64           `json:"totalTransports"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalValue      decimal.Decimal `json:"totalValue"`
}

type driverCountResponse struct {
	DriverID       uint   `json:"driverId"`
	Name           string `json:"name"`
	TransportCount int64  `json:"transportCount"`
}

type driverRevenueResponse struct {
	DriverID uint            `json:"driverId"`
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type companyRevenueResponse struct {
	CompanyID uint            `json:"companyId"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

func toCompanyResponse(c *models.Company) companyResponse {
	return companyResponse{ID: c.ID, Name: c.Name}
}

func toClientResponse(c *models.Client) clientResponse {
	return clientResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Phone: c.Phone}
}

func toEmployeeResponse(e *models.Employee) employeeResponse {
	qualifications := make([]string, 0, len(e.Qualifications))
	for _, q := range e.Qualifications {
		qualifications = append(qualifications, string(q.Qualification))
	}
	return employeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Salary:         e.Salary,
		CompanyID:      e.CompanyID,
		Role:           string(e.Role),
		Qualifications: qualifications,
	}
}

func toVehicleResponse(v *models.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:                 v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Brand:              v.Brand,
		Model:              v.Model,
		CompanyID:          v.CompanyID,
		Kind:               string(v.Kind),
		Seats:              v.Seats,
		MaxLoadKg:          v.MaxLoadKg,
		MaxLiters:          v.MaxLiters,
		Flammable:          v.Flammable,
	}
}

func toTransportResponse(t *models.Transport) transportResponse {
	return transportResponse{
		ID:             t.ID,
		Kind:           string(t.Kind),
		CompanyID:      t.CompanyID,
		ClientID:       t.ClientID,
		DriverID:       t.DriverID,
		VehicleID:      t.VehicleID,
		Destination:    t.Destination,
		Date:           t.TransportDate.Format(dateLayout),
		Price:          t.Price,
		PaymentStatus:  string(t.PaymentStatus),
		PassengerCount: t.PassengerCount,
		CargoWeightKg:  t.CargoWeightKg,
	}
}

func (r *createEmployeeRequest) toModel() *models.Employee {
	employee := &models.Employee{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Salary:    r.Salary,
		CompanyID: r.CompanyID,
		Role:      models.Role(r.Role),
	}
	for _, q := range r.Qualifications {
		employee.Qualifications = append(employee.Qualifications, models.DriverQualification{
			Qualification: models.Qualification(q),
		})
	}
	return employee
}

func (r *createVehicleRequest) toModel() *models.Vehicle {
	return &models.Vehicle{
		RegistrationNumber: r.RegistrationNumber,
		Brand:              r.Brand,
		Model:              r.Model,
		CompanyID:          r.CompanyID,
		Kind:               models.VehicleKind(r.Kind),
		Seats:              r.Seats,
		MaxLoadKg:          r.MaxLoadKg,
		MaxLiters:          r.MaxLiters,
		Flammable:          r.Flammable,
	}
}

func (r *createTransportRequest) toModel() (*models.Transport, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as %s", e.ErrInvalidInput, dateLayout)
	}
	return &models.Transport{
		Kind:           models.TransportKind(r.Kind),
		CompanyID:      r.CompanyID,
		ClientID:       r.ClientID,
		DriverID:       r.DriverID,
		VehicleID:      r.VehicleID,
		Destination:    r.Destination,
		TransportDate:  date,
		Price:          r.Price,
		PaymentStatus:  models.PaymentStatus(r.PaymentStatus),
		PassengerCount: r.PassengerCount,
		CargoWeightKg:  r.CargoWeightKg,
	}, nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
