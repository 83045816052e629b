package commands_test

import (
	"context"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/core/domain/model/spool"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSpoolRepository struct{ mock.Mock }

func (m *MockSpoolRepository) Add(ctx context.Context, s *spool.Spool) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSpoolRepository) Update(ctx context.Context, s *spool.Spool) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSpoolRepository) Get(ctx context.Context, id kernel.UUID) (*spool.Spool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spool.Spool), args.Error(1)
}

func (m *MockSpoolRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*spool.Spool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spool.Spool), args.Error(1)
}

func (m *MockSpoolRepository) GetAllActive(ctx context.Context) ([]*spool.Spool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spool.Spool), args.Error(1)
}

func (m *MockSpoolRepository) GetAllBelowThreshold(ctx context.Context, threshold float64) ([]*spool.Spool, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spool.Spool), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPrinterRepository struct{ mock.Mock }

func (m *MockPrinterRepository) Add(ctx context.Context, p *printer.Printer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrinterRepository) Update(ctx context.Context, p *printer.Printer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrinterRepository) Get(ctx context.Context, id kernel.UUID) (*printer.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printer.Printer), args.Error(1)
}

func (m *MockPrinterRepository) GetAll(ctx context.Context) ([]*printer.Printer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*printer.Printer), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWasteRepository struct{ mock.Mock }

func (m *MockWasteRepository) Add(ctx context.Context, r *spool.WasteRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockWasteRepository) GetAll(ctx context.Context) ([]*spool.WasteRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*spool.WasteRecord), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SpoolRepository() ports.SpoolRepository {
	args := m.Called()
	return args.Get(0).(ports.SpoolRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PrinterRepository() ports.PrinterRepository {
	args := m.Called()
	return args.Get(0).(ports.PrinterRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) WasteRepository() ports.WasteRepository {
	args := m.Called()
	return args.Get(0).(ports.WasteRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSpoolUoWFactory struct{ mock.Mock }

func (m *MockSpoolUoWFactory) Create() commands.SpoolUoW {
	args := m.Called()
	return args.Get(0).(commands.SpoolUoW)
}

type MockOrderSpoolUoWFactory struct{ mock.Mock }

func (m *MockOrderSpoolUoWFactory) Create() commands.OrderSpoolUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderSpoolUoW)
}

type MockOrderPrinterUoWFactory struct{ mock.Mock }

func (m *MockOrderPrinterUoWFactory) Create() commands.OrderPrinterUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPrinterUoW)
}

type MockSpoolWasteUoWFactory struct{ mock.Mock }

func (m *MockSpoolWasteUoWFactory) Create() commands.SpoolWasteUoW {
	args := m.Called()
	return args.Get(0).(commands.SpoolWasteUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockCustomerOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerOrderUoW)
}

type MockPrinterUoWFactory struct{ mock.Mock }

func (m *MockPrinterUoWFactory) Create() commands.PrinterUoW {
	args := m.Called()
	return args.Get(0).(commands.PrinterUoW)
}
