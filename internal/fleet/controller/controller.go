// Package controller implements the core business logic (service
// layer) for the fleet service: entity CRUD orchestration, the
// transport validation rules, reporting pass-throughs and lifecycle
// event production.
package controller

import (
	"context"
	"time"

	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EventProducer publishes entity lifecycle events.
type EventProducer interface {
	Produce(eventType events.EventType, key string, payload any)
}

// Repository defines the storage interface the service operates on.
type Repository interface {
	// Companies
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id uint) (*models.Company, error)
	GetAllCompanies(ctx context.Context) ([]models.Company, error)
	GetCompaniesSortedByName(ctx context.Context) ([]models.Company, error)
	UpdateCompanyName(ctx context.Context, id uint, name string) error
	DeleteCompany(ctx context.Context, id uint) error
	CompanyExistsByName(ctx context.Context, name string) (bool, error)

	// Clients
	CreateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetAllClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	// Employees and drivers
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetDriver(ctx context.Context, id uint) (*models.Employee, error)
	GetAllDrivers(ctx context.Context) ([]models.Employee, error)
	GetDriversSortedBySalaryAsc(ctx context.Context) ([]models.Employee, error)
	GetDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error)
	AddQualification(ctx context.Context, driverID uint, q models.Qualification) error
	RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error
	DeleteEmployee(ctx context.Context, id uint) error

	// Vehicles
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	GetAllVehicles(ctx context.Context) ([]models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error

	// Transports
	CreateTransport(ctx context.Context, transport *models.Transport) error
	GetTransport(ctx context.Context, id uint) (*models.Transport, error)
	GetAllTransports(ctx context.Context) ([]models.Transport, error)
	GetTransportsSortedByDestination(ctx context.Context) ([]models.Transport, error)
	SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error
	DeleteTransport(ctx context.Context, id uint) error

	// Reports
	TotalTransportsCount(ctx context.Context) (int64, error)
	TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error)
	TotalTransportsValue(ctx context.Context) (decimal.Decimal, error)
	RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error)
	DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error)
	RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error)
	CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error)
}

// Service provides the business operations of the fleet system via
// repository operations and event production.
type Service struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
}

// NewService constructs a Service with a repository, an event producer
// and a logger.
func NewService(repo Repository, producer EventProducer, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("fleet_service"),
	}
}
