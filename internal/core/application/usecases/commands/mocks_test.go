package commands_test

import (
	"context"

	"pocketmart/internal/core/application/usecases/commands"
	"pocketmart/internal/core/domain/model/account"
	"pocketmart/internal/core/domain/model/delivery"
	"pocketmart/internal/core/domain/model/order"
	"pocketmart/internal/core/domain/model/personnel"
	"pocketmart/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the command handler tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, details *account.ClientDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

type MockPersonnelRepository struct {
	mock.Mock
}

func (m *MockPersonnelRepository) Add(ctx context.Context, person *personnel.DeliveryPerson) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonnelRepository) Update(ctx context.Context, person *personnel.DeliveryPerson) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonnelRepository) Get(ctx context.Context, id int64) (*personnel.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personnel.DeliveryPerson), args.Error(1)
}

func (m *MockPersonnelRepository) ResetAllDailyCounts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

// MockUoW satisfies every per-workflow unit of work interface, so each
// test wires only the repositories its workflow touches.
type MockUoW struct {
	mock.Mock
}

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

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) PersonnelRepository() ports.PersonnelRepository {
	args := m.Called()
	return args.Get(0).(ports.PersonnelRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockAssignmentUoWFactory struct {
	mock.Mock
}

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockOnboardingUoWFactory struct {
	mock.Mock
}

func (m *MockOnboardingUoWFactory) Create() commands.OnboardingUoW {
	args := m.Called()
	return args.Get(0).(commands.OnboardingUoW)
}

type MockRegistrationUoWFactory struct {
	mock.Mock
}

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCompletionUoWFactory struct {
	mock.Mock
}

func (m *MockCompletionUoWFactory) Create() commands.CompletionUoW {
	args := m.Called()
	return args.Get(0).(commands.CompletionUoW)
}

type MockPersonnelUoWFactory struct {
	mock.Mock
}

func (m *MockPersonnelUoWFactory) Create() commands.PersonnelUoW {
	args := m.Called()
	return args.Get(0).(commands.PersonnelUoW)
}
