// Package handlers exposes the fleet service over HTTP, mapping
// requests to the service layer and business errors to status codes.
// Mutating routes are guarded by the JWT middleware; read routes are
// open.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fleetops/internal/fleet/auth"
	e "fleetops/internal/fleet/errors"
	"fleetops/internal/fleet/models"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Controller defines the business logic interface the HTTP handlers
// invoke.
type Controller interface {
	CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	GetCompany(ctx context.Context, id uint) (*models.Company, error)
	ListCompanies(ctx context.Context, sortedByName bool) ([]models.Company, error)
	UpdateCompanyName(ctx context.Context, id uint, name string) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uint) error

	CreateClient(ctx context.Context, client *models.Client) (*models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListDrivers(ctx context.Context, sortedBySalary bool) ([]models.Employee, error)
	ListDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error)
	AddQualification(ctx context.Context, driverID uint, q models.Qualification) error
	RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error
	DeleteEmployee(ctx context.Context, id uint) error

	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error

	CreateTransport(ctx context.Context, transport *models.Transport) (*models.Transport, error)
	GetTransport(ctx context.Context, id uint) (*models.Transport, error)
	ListTransports(ctx context.Context, sortedByDestination bool) ([]models.Transport, error)
	SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Transport, error)
	DeleteTransport(ctx context.Context, id uint) error

	TotalTransportsCount(ctx context.Context) (int64, error)
	TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error)
	TotalTransportsValue(ctx context.Context) (decimal.Decimal, error)
	RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error)
	DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error)
	RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error)
	CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error)
}

// ExportRunner triggers a transport export to the given path.
type ExportRunner interface {
	ExportTransports(ctx context.Context, path string) error
}

// Server wires the echo router, the service layer and the exporter.
type Server struct {
	echo     *echo.Echo
	service  Controller
	exporter ExportRunner
	logger   *zap.Logger
	addr     string
}

// NewServer constructs the HTTP server and registers all routes.
func NewServer(addr string, service Controller, exporter ExportRunner, jwtSecret string, logger *zap.Logger) *Server {
	s := &Server{
		echo:     echo.New(),
		service:  service,
		exporter: exporter,
		logger:   logger.Named("http_server"),
		addr:     addr,
	}
	s.echo.HideBanner = true
	s.registerRoutes(auth.Middleware(jwtSecret))
	return s
}

func (s *Server) registerRoutes(mutating echo.MiddlewareFunc) {
	v1 := s.echo.Group("/api/v1")

	v1.POST("/companies", s.createCompany, mutating)
	v1.GET("/companies", s.listCompanies)
	v1.GET("/companies/:id", s.getCompany)
	v1.PUT("/companies/:id/name", s.updateCompanyName, mutating)
	v1.DELETE("/companies/:id", s.deleteCompany, mutating)

	v1.POST("/clients", s.createClient, mutating)
	v1.GET("/clients", s.listClients)
	v1.GET("/clients/:id", s.getClient)
	v1.DELETE("/clients/:id", s.deleteClient, mutating)

	v1.POST("/employees", s.createEmployee, mutating)
	v1.GET("/employees", s.listEmployees)
	v1.GET("/employees/:id", s.getEmployee)
	v1.DELETE("/employees/:id", s.deleteEmployee, mutating)

	v1.GET("/drivers", s.listDrivers)
	v1.POST("/drivers/:id/qualifications", s.addQualification, mutating)
	v1.DELETE("/drivers/:id/qualifications/:qualification", s.removeQualification, mutating)

	v1.POST("/vehicles", s.createVehicle, mutating)
	v1.GET("/vehicles", s.listVehicles)
	v1.GET("/vehicles/:id", s.getVehicle)
	v1.DELETE("/vehicles/:id", s.deleteVehicle, mutating)

	v1.POST("/transports", s.createTransport, mutating)
	v1.GET("/transports", s.listTransports)
	v1.GET("/transports/:id", s.getTransport)
	v1.PUT("/transports/:id/payment-status", s.setPaymentStatus, mutating)
	v1.DELETE("/transports/:id", s.deleteTransport, mutating)

	v1.GET("/reports/summary", s.reportSummary)
	v1.GET("/reports/revenue", s.reportRevenueForPeriod)
	v1.GET("/reports/drivers/transport-counts", s.reportDriverTransportCounts)
	v1.GET("/reports/drivers/revenue", s.reportDriverRevenue)
	v1.GET("/reports/companies/revenue", s.reportCompanyRevenue)

	v1.POST("/exports/transports", s.exportTransports, mutating)
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}
}

// httpError maps business errors to HTTP status codes.
func (s *Server) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, e.ErrDuplicate), errors.Is(err, e.ErrInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, e.ErrMissingRequiredData),
		errors.Is(err, e.ErrInvalidVehicle),
		errors.Is(err, e.ErrDriverQualification):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, e.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("Internal error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
