package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/domain/repository"
	mockRepo "ridehail/internal/mocks/repository"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripServiceFixtures struct {
	service     usecase.TripUsecase
	tripRepo    *mockRepo.MockTripRepository
	accountRepo *mockRepo.MockAccountRepository
}

func createTestTripService(t *testing.T) tripServiceFixtures {
	t.Helper()

	tripRepo := &mockRepo.MockTripRepository{}
	accountRepo := &mockRepo.MockAccountRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			AccountRepository: accountRepo,
			TripRepository:    tripRepo,
		},
	}

	svc := NewTripService(TripServiceParams{
		TxManager:   txManager,
		TripRepo:    tripRepo,
		AccountRepo: accountRepo,
		Logger:      logger,
	})

	t.Cleanup(func() {
		tripRepo.AssertExpectations(t)
		accountRepo.AssertExpectations(t)
	})

	return tripServiceFixtures{
		service:     svc,
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
	}
}

func TestTripService_CreateTrip_Success(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()
	driverID := uuid.New()
	passengerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, driverID).
		Return(&entity.Account{ID: driverID, Role: entity.RoleDriver}, nil)
	fx.accountRepo.On("FindByID", ctx, passengerID).
		Return(&entity.Account{ID: passengerID, Role: entity.RolePassenger}, nil)
	fx.tripRepo.On("Create", ctx, mock.AnythingOfType("*entity.Trip")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Trip).ID = uuid.New()
		}).
		Return(nil)

	trip, err := fx.service.CreateTrip(ctx, &usecase.CreateTripInput{
		DriverID:    driverID,
		PassengerID: passengerID,
		Origin:      "Central Station",
		Destination: "Airport",
		Fare:        42.5,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TripStatusRequested, trip.Status)
	assert.NotEqual(t, uuid.Nil, trip.ID)
}

func TestTripService_CreateTrip_UnknownDriver(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()
	driverID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, driverID).
		Return(nil, repository.ErrAccountNotFound)

	trip, err := fx.service.CreateTrip(ctx, &usecase.CreateTripInput{
		DriverID:    driverID,
		PassengerID: uuid.New(),
		Origin:      "A",
		Destination: "B",
	})

	assert.Nil(t, trip)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestTripService_CreateTrip_RoleMismatch(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()
	driverID := uuid.New()
	passengerID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, driverID).
		Return(&entity.Account{ID: driverID, Role: entity.RoleDriver}, nil)
	// A driver account cannot ride in the passenger seat of the ledger.
	fx.accountRepo.On("FindByID", ctx, passengerID).
		Return(&entity.Account{ID: passengerID, Role: entity.RoleDriver}, nil)

	_, err := fx.service.CreateTrip(ctx, &usecase.CreateTripInput{
		DriverID:    driverID,
		PassengerID: passengerID,
		Origin:      "A",
		Destination: "B",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTripService_UpdateTrip_UnknownStatus(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateTrip(ctx, &usecase.UpdateTripInput{
		ID:          uuid.New(),
		Origin:      "A",
		Destination: "B",
		Status:      entity.TripStatus("teleporting"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTripService_UpdateTrip_Success(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	fx.tripRepo.On("Update", ctx, mock.AnythingOfType("*entity.Trip")).Return(nil)
	fx.tripRepo.On("FindByID", ctx, tripID).
		Return(&entity.Trip{ID: tripID, Status: entity.TripStatusCompleted}, nil)

	trip, err := fx.service.UpdateTrip(ctx, &usecase.UpdateTripInput{
		ID:          tripID,
		Origin:      "A",
		Destination: "B",
		Status:      entity.TripStatusCompleted,
		Fare:        10,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TripStatusCompleted, trip.Status)
}

func TestTripService_DeleteTrip_NotFound(t *testing.T) {
	fx := createTestTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	fx.tripRepo.On("Delete", ctx, tripID).Return(repository.ErrTripNotFound)

	err := fx.service.DeleteTrip(ctx, tripID)

	assert.True(t, errors.Is(err, domainerrors.ErrTripNotFound))
}
