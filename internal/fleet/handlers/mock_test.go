package handlers

import (
	"context"
	"time"

	"fleetops/internal/fleet/models"
	"github.com/shopspring/decimal"
)

// mockController implements Controller with overridable function
// fields. Methods with a nil field return zero values.
type mockController struct {
	CreateCompanyFn     func(ctx context.Context, company *models.Company) (*models.Company, error)
	GetCompanyFn        func(ctx context.Context, id uint) (*models.Company, error)
	ListCompaniesFn     func(ctx context.Context, sortedByName bool) ([]models.Company, error)
	UpdateCompanyNameFn func(ctx context.Context, id uint, name string) (*models.Company, error)
	DeleteCompanyFn     func(ctx context.Context, id uint) error

	CreateClientFn func(ctx context.Context, client *models.Client) (*models.Client, error)
	GetClientFn    func(ctx context.Context, id uint) (*models.Client, error)
	ListClientsFn  func(ctx context.Context) ([]models.Client, error)
	DeleteClientFn func(ctx context.Context, id uint) error

	CreateEmployeeFn               func(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetEmployeeFn                  func(ctx context.Context, id uint) (*models.Employee, error)
	ListEmployeesFn                func(ctx context.Context) ([]models.Employee, error)
	ListDriversFn                  func(ctx context.Context, sortedBySalary bool) ([]models.Employee, error)
	ListDriversWithQualificationFn func(ctx context.Context, q models.Qualification) ([]models.Employee, error)
	AddQualificationFn             func(ctx context.Context, driverID uint, q models.Qualification) error
	RemoveQualificationFn          func(ctx context.Context, driverID uint, q models.Qualification) error
	DeleteEmployeeFn               func(ctx context.Context, id uint) error

	CreateVehicleFn func(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicleFn    func(ctx context.Context, id uint) (*models.Vehicle, error)
	ListVehiclesFn  func(ctx context.Context) ([]models.Vehicle, error)
	DeleteVehicleFn func(ctx context.Context, id uint) error

	CreateTransportFn  func(ctx context.Context, transport *models.Transport) (*models.Transport, error)
	GetTransportFn     func(ctx context.Context, id uint) (*models.Transport, error)
	ListTransportsFn   func(ctx context.Context, sortedByDestination bool) ([]models.Transport, error)
	SetPaymentStatusFn func(ctx context.Context, id uint, status models.PaymentStatus) (*models.Transport, error)
	DeleteTransportFn  func(ctx context.Context, id uint) error

	TotalTransportsCountFn           func(ctx context.Context) (int64, error)
	TotalTransportsRevenueFn         func(ctx context.Context) (decimal.Decimal, error)
	TotalTransportsValueFn           func(ctx context.Context) (decimal.Decimal, error)
	RevenueForPeriodFn               func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DriversWithTransportsCountFn     func(ctx context.Context) ([]models.DriverTransportCount, error)
	DriversWithPaidTransportsCountFn func(ctx context.Context) ([]models.DriverTransportCount, error)
	RevenueByDriverFn                func(ctx context.Context) ([]models.DriverRevenue, error)
	CompaniesSortedByRevenueDescFn   func(ctx context.Context) ([]models.CompanyRevenue, error)
}

func (m *mockController) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if m.CreateCompanyFn == nil {
		return company, nil
	}
	return m.CreateCompanyFn(ctx, company)
}

func (m *mockController) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	if m.GetCompanyFn == nil {
		return &models.Company{ID: id}, nil
	}
	return m.GetCompanyFn(ctx, id)
}

func (m *mockController) ListCompanies(ctx context.Context, sortedByName bool) ([]models.Company, error) {
	if m.ListCompaniesFn == nil {
		return nil, nil
	}
	return m.ListCompaniesFn(ctx, sortedByName)
}

func (m *mockController) UpdateCompanyName(ctx context.Context, id uint, name string) (*models.Company, error) {
	if m.UpdateCompanyNameFn == nil {
		return &models.Company{ID: id, Name: name}, nil
	}
	return m.UpdateCompanyNameFn(ctx, id, name)
}

func (m *mockController) DeleteCompany(ctx context.Context, id uint) error {
	if m.DeleteCompanyFn == nil {
		return nil
	}
	return m.DeleteCompanyFn(ctx, id)
}

func (m *mockController) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if m.CreateClientFn == nil {
		return client, nil
	}
	return m.CreateClientFn(ctx, client)
}

func (m *mockController) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	if m.GetClientFn == nil {
		return &models.Client{ID: id}, nil
	}
	return m.GetClientFn(ctx, id)
}

func (m *mockController) ListClients(ctx context.Context) ([]models.Client, error) {
	if m.ListClientsFn == nil {
		return nil, nil
	}
	return m.ListClientsFn(ctx)
}

func (m *mockController) DeleteClient(ctx context.Context, id uint) error {
	if m.DeleteClientFn == nil {
		return nil
	}
	return m.DeleteClientFn(ctx, id)
}

func (m *mockController) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if m.CreateEmployeeFn == nil {
		return employee, nil
	}
	return m.CreateEmployeeFn(ctx, employee)
}

func (m *mockController) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	if m.GetEmployeeFn == nil {
		return &models.Employee{ID: id}, nil
	}
	return m.GetEmployeeFn(ctx, id)
}

func (m *mockController) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if m.ListEmployeesFn == nil {
		return nil, nil
	}
	return m.ListEmployeesFn(ctx)
}

func (m *mockController) ListDrivers(ctx context.Context, sortedBySalary bool) ([]models.Employee, error) {
	if m.ListDriversFn == nil {
		return nil, nil
	}
	return m.ListDriversFn(ctx, sortedBySalary)
}

func (m *mockController) ListDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error) {
	if m.ListDriversWithQualificationFn == nil {
		return nil, nil
	}
	return m.ListDriversWithQualificationFn(ctx, q)
}

func (m *mockController) AddQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if m.AddQualificationFn == nil {
		return nil
	}
	return m.AddQualificationFn(ctx, driverID, q)
}

func (m *mockController) RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if m.RemoveQualificationFn == nil {
		return nil
	}
	return m.RemoveQualificationFn(ctx, driverID, q)
}

func (m *mockController) DeleteEmployee(ctx context.Context, id uint) error {
	if m.DeleteEmployeeFn == nil {
		return nil
	}
	return m.DeleteEmployeeFn(ctx, id)
}

func (m *mockController) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if m.CreateVehicleFn == nil {
		return vehicle, nil
	}
	return m.CreateVehicleFn(ctx, vehicle)
}

func (m *mockController) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	if m.GetVehicleFn == nil {
		return &models.Vehicle{ID: id}, nil
	}
	return m.GetVehicleFn(ctx, id)
}

func (m *mockController) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if m.ListVehiclesFn == nil {
		return nil, nil
	}
	return m.ListVehiclesFn(ctx)
}

func (m *mockController) DeleteVehicle(ctx context.Context, id uint) error {
	if m.DeleteVehicleFn == nil {
		return nil
	}
	return m.DeleteVehicleFn(ctx, id)
}

func (m *mockController) CreateTransport(ctx context.Context, transport *models.Transport) (*models.Transport, error) {
	if m.CreateTransportFn == nil {
		return transport, nil
	}
	return m.CreateTransportFn(ctx, transport)
}

func (m *mockController) GetTransport(ctx context.Context, id uint) (*models.Transport, error) {
	if m.GetTransportFn == nil {
		return &models.Transport{ID: id}, nil
	}
	return m.GetTransportFn(ctx, id)
}

func (m *mockController) ListTransports(ctx context.Context, sortedByDestination bool) ([]models.Transport, error) {
	if m.ListTransportsFn == nil {
		return nil, nil
	}
	return m.ListTransportsFn(ctx, sortedByDestination)
}

func (m *mockController) SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Transport, error) {
	if m.SetPaymentStatusFn == nil {
		return &models.Transport{ID: id, PaymentStatus: status}, nil
	}
	return m.SetPaymentStatusFn(ctx, id, status)
}

func (m *mockController) DeleteTransport(ctx context.Context, id uint) error {
	if m.DeleteTransportFn == nil {
		return nil
	}
	return m.DeleteTransportFn(ctx, id)
}

func (m *mockController) TotalTransportsCount(ctx context.Context) (int64, error) {
	if m.TotalTransportsCountFn == nil {
		return 0, nil
	}
	return m.TotalTransportsCountFn(ctx)
}

func (m *mockController) TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalTransportsRevenueFn == nil {
		return decimal.Zero, nil
	}
	return m.TotalTransportsRevenueFn(ctx)
}

func (m *mockController) TotalTransportsValue(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalTransportsValueFn == nil {
		return decimal.Zero, nil
	}
	return m.TotalTransportsValueFn(ctx)
}

func (m *mockController) RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.RevenueForPeriodFn == nil {
		return decimal.Zero, nil
	}
	return m.RevenueForPeriodFn(ctx, from, to)
}

func (m *mockController) DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	if m.DriversWithTransportsCountFn == nil {
		return nil, nil
	}
	return m.DriversWithTransportsCountFn(ctx)
}

func (m *mockController) DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	if m.DriversWithPaidTransportsCountFn == nil {
		return nil, nil
	}
	return m.DriversWithPaidTransportsCountFn(ctx)
}

func (m *mockController) RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error) {
	if m.RevenueByDriverFn == nil {
		return nil, nil
	}
	return m.RevenueByDriverFn(ctx)
}

func (m *mockController) CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error) {
	if m.CompaniesSortedByRevenueDescFn == nil {
		return nil, nil
	}
	return m.CompaniesSortedByRevenueDescFn(ctx)
}

// mockExporter records export invocations.
type mockExporter struct {
	ExportTransportsFn func(ctx context.Context, path string) error
}

func (m *mockExporter) ExportTransports(ctx context.Context, path string) error {
	if m.ExportTransportsFn == nil {
		return nil
	}
	return m.ExportTransportsFn(ctx, path)
}
