package controller

import (
	"context"
	"sync"
	"time"

	"fleetops/internal/fleet/events"
	"fleetops/internal/fleet/models"
	"github.com/shopspring/decimal"
)

// mockRepository implements Repository with overridable function
// fields. Methods with a nil field return zero values.
type mockRepository struct {
	CreateCompanyFn            func(ctx context.Context, company *models.Company) error
	GetCompanyFn               func(ctx context.Context, id uint) (*models.Company, error)
	GetAllCompaniesFn          func(ctx context.Context) ([]models.Company, error)
	GetCompaniesSortedByNameFn func(ctx context.Context) ([]models.Company, error)
	UpdateCompanyNameFn        func(ctx context.Context, id uint, name string) error
	DeleteCompanyFn            func(ctx context.Context, id uint) error
	CompanyExistsByNameFn      func(ctx context.Context, name string) (bool, error)

	CreateClientFn  func(ctx context.Context, client *models.Client) error
	GetClientFn     func(ctx context.Context, id uint) (*models.Client, error)
	GetAllClientsFn func(ctx context.Context) ([]models.Client, error)
	DeleteClientFn  func(ctx context.Context, id uint) error

	CreateEmployeeFn              func(ctx context.Context, employee *models.Employee) error
	GetEmployeeFn                 func(ctx context.Context, id uint) (*models.Employee, error)
	GetAllEmployeesFn             func(ctx context.Context) ([]models.Employee, error)
	GetDriverFn                   func(ctx context.Context, id uint) (*models.Employee, error)
	GetAllDriversFn               func(ctx context.Context) ([]models.Employee, error)
	GetDriversSortedBySalaryAscFn func(ctx context.Context) ([]models.Employee, error)
	GetDriversWithQualificationFn func(ctx context.Context, q models.Qualification) ([]models.Employee, error)
	AddQualificationFn            func(ctx context.Context, driverID uint, q models.Qualification) error
	RemoveQualificationFn         func(ctx context.Context, driverID uint, q models.Qualification) error
	DeleteEmployeeFn              func(ctx context.Context, id uint) error

	CreateVehicleFn  func(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicleFn     func(ctx context.Context, id uint) (*models.Vehicle, error)
	GetAllVehiclesFn func(ctx context.Context) ([]models.Vehicle, error)
	DeleteVehicleFn  func(ctx context.Context, id uint) error

	CreateTransportFn                  func(ctx context.Context, transport *models.Transport) error
	GetTransportFn                     func(ctx context.Context, id uint) (*models.Transport, error)
	GetAllTransportsFn                 func(ctx context.Context) ([]models.Transport, error)
	GetTransportsSortedByDestinationFn func(ctx context.Context) ([]models.Transport, error)
	SetPaymentStatusFn                 func(ctx context.Context, id uint, status models.PaymentStatus) error
	DeleteTransportFn                  func(ctx context.Context, id uint) error

	TotalTransportsCountFn           func(ctx context.Context) (int64, error)
	TotalTransportsRevenueFn         func(ctx context.Context) (decimal.Decimal, error)
	TotalTransportsValueFn           func(ctx context.Context) (decimal.Decimal, error)
	RevenueForPeriodFn               func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DriversWithTransportsCountFn     func(ctx context.Context) ([]models.DriverTransportCount, error)
	DriversWithPaidTransportsCountFn func(ctx context.Context) ([]models.DriverTransportCount, error)
	RevenueByDriverFn                func(ctx context.Context) ([]models.DriverRevenue, error)
	CompaniesSortedByRevenueDescFn   func(ctx context.Context) ([]models.CompanyRevenue, error)
}

func (m *mockRepository) CreateCompany(ctx context.Context, company *models.Company) error {
	if m.CreateCompanyFn == nil {
		return nil
	}
	return m.CreateCompanyFn(ctx, company)
}

func (m *mockRepository) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	if m.GetCompanyFn == nil {
		return nil, nil
	}
	return m.GetCompanyFn(ctx, id)
}

func (m *mockRepository) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	if m.GetAllCompaniesFn == nil {
		return nil, nil
	}
	return m.GetAllCompaniesFn(ctx)
}

func (m *mockRepository) GetCompaniesSortedByName(ctx context.Context) ([]models.Company, error) {
	if m.GetCompaniesSortedByNameFn == nil {
		return nil, nil
	}
	return m.GetCompaniesSortedByNameFn(ctx)
}

func (m *mockRepository) UpdateCompanyName(ctx context.Context, id uint, name string) error {
	if m.UpdateCompanyNameFn == nil {
		return nil
	}
	return m.UpdateCompanyNameFn(ctx, id, name)
}

func (m *mockRepository) DeleteCompany(ctx context.Context, id uint) error {
	if m.DeleteCompanyFn == nil {
		return nil
	}
	return m.DeleteCompanyFn(ctx, id)
}

func (m *mockRepository) CompanyExistsByName(ctx context.Context, name string) (bool, error) {
	if m.CompanyExistsByNameFn == nil {
		return false, nil
	}
	return m.CompanyExistsByNameFn(ctx, name)
}

func (m *mockRepository) CreateClient(ctx context.Context, client *models.Client) error {
	if m.CreateClientFn == nil {
		return nil
	}
	return m.CreateClientFn(ctx, client)
}

func (m *mockRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	if m.GetClientFn == nil {
		return nil, nil
	}
	return m.GetClientFn(ctx, id)
}

func (m *mockRepository) GetAllClients(ctx context.Context) ([]models.Client, error) {
	if m.GetAllClientsFn == nil {
		return nil, nil
	}
	return m.GetAllClientsFn(ctx)
}

func (m *mockRepository) DeleteClient(ctx context.Context, id uint) error {
	if m.DeleteClientFn == nil {
		return nil
	}
	return m.DeleteClientFn(ctx, id)
}

func (m *mockRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if m.CreateEmployeeFn == nil {
		return nil
	}
	return m.CreateEmployeeFn(ctx, employee)
}

func (m *mockRepository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	if m.GetEmployeeFn == nil {
		return nil, nil
	}
	return m.GetEmployeeFn(ctx, id)
}

func (m *mockRepository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	if m.GetAllEmployeesFn == nil {
		return nil, nil
	}
	return m.GetAllEmployeesFn(ctx)
}

func (m *mockRepository) GetDriver(ctx context.Context, id uint) (*models.Employee, error) {
	if m.GetDriverFn == nil {
		return nil, nil
	}
	return m.GetDriverFn(ctx, id)
}

func (m *mockRepository) GetAllDrivers(ctx context.Context) ([]models.Employee, error) {
	if m.GetAllDriversFn == nil {
		return nil, nil
	}
	return m.GetAllDriversFn(ctx)
}

func (m *mockRepository) GetDriversSortedBySalaryAsc(ctx context.Context) ([]models.Employee, error) {
	if m.GetDriversSortedBySalaryAscFn == nil {
		return nil, nil
	}
	return m.GetDriversSortedBySalaryAscFn(ctx)
}

func (m *mockRepository) GetDriversWithQualification(ctx context.Context, q models.Qualification) ([]models.Employee, error) {
	if m.GetDriversWithQualificationFn == nil {
		return nil, nil
	}
	return m.GetDriversWithQualificationFn(ctx, q)
}

func (m *mockRepository) AddQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if m.AddQualificationFn == nil {
		return nil
	}
	return m.AddQualificationFn(ctx, driverID, q)
}

func (m *mockRepository) RemoveQualification(ctx context.Context, driverID uint, q models.Qualification) error {
	if m.RemoveQualificationFn == nil {
		return nil
	}
	return m.RemoveQualificationFn(ctx, driverID, q)
}

func (m *mockRepository) DeleteEmployee(ctx context.Context, id uint) error {
	if m.DeleteEmployeeFn == nil {
		return nil
	}
	return m.DeleteEmployeeFn(ctx, id)
}

func (m *mockRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if m.CreateVehicleFn == nil {
		return nil
	}
	return m.CreateVehicleFn(ctx, vehicle)
}

func (m *mockRepository) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	if m.GetVehicleFn == nil {
		return nil, nil
	}
	return m.GetVehicleFn(ctx, id)
}

func (m *mockRepository) GetAllVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if m.GetAllVehiclesFn == nil {
		return nil, nil
	}
	return m.GetAllVehiclesFn(ctx)
}

func (m *mockRepository) DeleteVehicle(ctx context.Context, id uint) error {
	if m.DeleteVehicleFn == nil {
		return nil
	}
	return m.DeleteVehicleFn(ctx, id)
}

func (m *mockRepository) CreateTransport(ctx context.Context, transport *models.Transport) error {
	if m.CreateTransportFn == nil {
		return nil
	}
	return m.CreateTransportFn(ctx, transport)
}

func (m *mockRepository) GetTransport(ctx context.Context, id uint) (*models.Transport, error) {
	if m.GetTransportFn == nil {
		return nil, nil
	}
	return m.GetTransportFn(ctx, id)
}

func (m *mockRepository) GetAllTransports(ctx context.Context) ([]models.Transport, error) {
	if m.GetAllTransportsFn == nil {
		return nil, nil
	}
	return m.GetAllTransportsFn(ctx)
}

func (m *mockRepository) GetTransportsSortedByDestination(ctx context.Context) ([]models.Transport, error) {
	if m.GetTransportsSortedByDestinationFn == nil {
		return nil, nil
	}
	return m.GetTransportsSortedByDestinationFn(ctx)
}

func (m *mockRepository) SetPaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	if m.SetPaymentStatusFn == nil {
		return nil
	}
	return m.SetPaymentStatusFn(ctx, id, status)
}

func (m *mockRepository) DeleteTransport(ctx context.Context, id uint) error {
	if m.DeleteTransportFn == nil {
		return nil
	}
	return m.DeleteTransportFn(ctx, id)
}

func (m *mockRepository) TotalTransportsCount(ctx context.Context) (int64, error) {
	if m.TotalTransportsCountFn == nil {
		return 0, nil
	}
	return m.TotalTransportsCountFn(ctx)
}

func (m *mockRepository) TotalTransportsRevenue(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalTransportsRevenueFn == nil {
		return decimal.Zero, nil
	}
	return m.TotalTransportsRevenueFn(ctx)
}

func (m *mockRepository) TotalTransportsValue(ctx context.Context) (decimal.Decimal, error) {
	if m.TotalTransportsValueFn == nil {
		return decimal.Zero, nil
	}
	return m.TotalTransportsValueFn(ctx)
}

func (m *mockRepository) RevenueForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.RevenueForPeriodFn == nil {
		return decimal.Zero, nil
	}
	return m.RevenueForPeriodFn(ctx, from, to)
}

func (m *mockRepository) DriversWithTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	if m.DriversWithTransportsCountFn == nil {
		return nil, nil
	}
	return m.DriversWithTransportsCountFn(ctx)
}

func (m *mockRepository) DriversWithPaidTransportsCount(ctx context.Context) ([]models.DriverTransportCount, error) {
	if m.DriversWithPaidTransportsCountFn == nil {
		return nil, nil
	}
	return m.DriversWithPaidTransportsCountFn(ctx)
}

func (m *mockRepository) RevenueByDriver(ctx context.Context) ([]models.DriverRevenue, error) {
	if m.RevenueByDriverFn == nil {
		return nil, nil
	}
	return m.RevenueByDriverFn(ctx)
}

func (m *mockRepository) CompaniesSortedByRevenueDesc(ctx context.Context) ([]models.CompanyRevenue, error) {
	if m.CompaniesSortedByRevenueDescFn == nil {
		return nil, nil
	}
	return m.CompaniesSortedByRevenueDescFn(ctx)
}

// recordedEvent captures one Produce call.
type recordedEvent struct {
	Type    events.EventType
	Key     string
	Payload any
}

// mockProducer records produced events. Produce is called from
// goroutines, so access is guarded and Wait gives tests a rendezvous.
type mockProducer struct {
	mu     sync.Mutex
	events []recordedEvent
	signal chan struct{}
}

func newMockProducer() *mockProducer {
	return &mockProducer{signal: make(chan struct{}, 64)}
}

func (p *mockProducer) Produce(eventType events.EventType, key string, payload any) {
	p.mu.Lock()
	p.events = append(p.events, recordedEvent{Type: eventType, Key: key, Payload: payload})
	p.mu.Unlock()
	p.signal <- struct{}{}
}

// Wait blocks until n events have been produced or the timeout fires.
func (p *mockProducer) Wait(n int, timeout time.Duration) []recordedEvent {
	deadline := time.After(timeout)
loop:
	for i := 0; i < n; i++ {
		select {
		case <-p.signal:
		case <-deadline:
			break loop
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]recordedEvent, len(p.events))
	copy(out, p.events)
	return out
}
