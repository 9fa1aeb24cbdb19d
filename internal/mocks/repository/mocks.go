// Package repository contains hand-written testify mocks for the persistence
// contracts, used by the usecase tests.
package repository

import (
	"context"
	"time"

	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Account, error) {
	args := m.Called(ctx, tokenHash)
	if acc, ok := args.Get(0).(*entity.Account); ok {
		return acc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) SetRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt *time.Time) error {
	return m.Called(ctx, accountID, tokenHash, expiresAt).Error(0)
}

func (m *MockAccountRepository) RotateRefreshToken(ctx context.Context, accountID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	return m.Called(ctx, accountID, oldHash, newHash, expiresAt).Error(0)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	return m.Called(ctx, accountID, passwordHash).Error(0)
}

func (m *MockAccountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	args := m.Called(ctx, role)
	if accounts, ok := args.Get(0).([]*entity.Account); ok {
		return accounts, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockResetTicketRepository mocks repository.ResetTicketRepository.
type MockResetTicketRepository struct {
	mock.Mock
}

func (m *MockResetTicketRepository) Create(ctx context.Context, ticket *entity.PasswordResetTicket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *MockResetTicketRepository) Consume(ctx context.Context, ticketHash string, now time.Time) (*entity.PasswordResetTicket, error) {
	args := m.Called(ctx, ticketHash, now)
	if ticket, ok := args.Get(0).(*entity.PasswordResetTicket); ok {
		return ticket, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockResetTicketRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	return m.Called(ctx, now).Error(0)
}

// MockVehicleRepository mocks repository.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	args := m.Called(ctx, id)
	if vehicle, ok := args.Get(0).(*entity.Vehicle); ok {
		return vehicle, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleRepository) FindByModelID(ctx context.Context, modelID uuid.UUID) (*entity.Vehicle, error) {
	args := m.Called(ctx, modelID)
	if vehicle, ok := args.Get(0).(*entity.Vehicle); ok {
		return vehicle, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	args := m.Called(ctx)
	if vehicles, ok := args.Get(0).([]*entity.Vehicle); ok {
		return vehicles, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	return m.Called(ctx, vehicleID, driverID).Error(0)
}

func (m *MockVehicleRepository) UnassignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	return m.Called(ctx, vehicleID, driverID).Error(0)
}

func (m *MockVehicleRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error) {
	args := m.Called(ctx, driverID)
	if vehicles, ok := args.Get(0).([]*entity.Vehicle); ok {
		return vehicles, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleRepository) ListDriverIDs(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, vehicleID)
	if ids, ok := args.Get(0).([]uuid.UUID); ok {
		return ids, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockVehicleModelRepository mocks repository.VehicleModelRepository.
type MockVehicleModelRepository struct {
	mock.Mock
}

func (m *MockVehicleModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error) {
	args := m.Called(ctx, id)
	if model, ok := args.Get(0).(*entity.VehicleModel); ok {
		return model, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleModelRepository) List(ctx context.Context) ([]*entity.VehicleModel, error) {
	args := m.Called(ctx)
	if models, ok := args.Get(0).([]*entity.VehicleModel); ok {
		return models, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVehicleModelRepository) Create(ctx context.Context, model *entity.VehicleModel) error {
	return m.Called(ctx, model).Error(0)
}

func (m *MockVehicleModelRepository) Update(ctx context.Context, model *entity.VehicleModel) error {
	return m.Called(ctx, model).Error(0)
}

func (m *MockVehicleModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockTripRepository mocks repository.TripRepository.
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	args := m.Called(ctx, id)
	if trip, ok := args.Get(0).(*entity.Trip); ok {
		return trip, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTripRepository) List(ctx context.Context) ([]*entity.Trip, error) {
	args := m.Called(ctx)
	if trips, ok := args.Get(0).([]*entity.Trip); ok {
		return trips, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTripRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Trip, error) {
	args := m.Called(ctx, driverID)
	if trips, ok := args.Get(0).([]*entity.Trip); ok {
		return trips, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTripRepository) ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*entity.Trip, error) {
	args := m.Called(ctx, passengerID)
	if trips, ok := args.Get(0).([]*entity.Trip); ok {
		return trips, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// StubRepositoryFactory hands the test's repository mocks to transactional code.
type StubRepositoryFactory struct {
	AccountRepository     repository.AccountRepository
	ResetTicketRepository repository.ResetTicketRepository
	VehicleRepository     repository.VehicleRepository
	ModelRepository       repository.VehicleModelRepository
	TripRepository        repository.TripRepository
}

func (f *StubRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.AccountRepository
}

func (f *StubRepositoryFactory) ResetTicketRepo() repository.ResetTicketRepository {
	return f.ResetTicketRepository
}

func (f *StubRepositoryFactory) VehicleRepo() repository.VehicleRepository {
	return f.VehicleRepository
}

func (f *StubRepositoryFactory) ModelRepo() repository.VehicleModelRepository {
	return f.ModelRepository
}

func (f *StubRepositoryFactory) TripRepo() repository.TripRepository {
	return f.TripRepository
}

// StubTransactionManager invokes the callback synchronously against the stub
// factory, standing in for a real database transaction in tests.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
