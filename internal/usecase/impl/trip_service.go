package impl

import (
	"context"
	"log/slog"

	deliverycontext "ridehail/internal/delivery/context"
	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/domain/repository"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	txManager   repository.TransactionManager
	tripRepo    repository.TripRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// TripServiceParams holds dependencies for tripService, injected by Fx.
type TripServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TripRepo    repository.TripRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewTripService is the constructor for tripService.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		txManager:   params.TxManager,
		tripRepo:    params.TripRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *tripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tripService) CreateTrip(ctx context.Context, input *usecase.CreateTripInput) (*entity.Trip, error) {
	trip := &entity.Trip{
		DriverID:    input.DriverID,
		PassengerID: input.PassengerID,
		Origin:      input.Origin,
		Destination: input.Destination,
		Status:      entity.TripStatusRequested,
		Fare:        input.Fare,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := requireRole(ctx, accountRepo, input.DriverID, entity.RoleDriver); err != nil {
			return err
		}
		if err := requireRole(ctx, accountRepo, input.PassengerID, entity.RolePassenger); err != nil {
			return err
		}

		if err := repoFactory.TripRepo().Create(ctx, trip); err != nil {
			return errors.Wrap(err, "failed to create trip")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create trip", slog.Any("driverID", input.DriverID), slog.Any("passengerID", input.PassengerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Trip created", slog.Any("tripID", trip.ID))

	return trip, nil
}

func (srv *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	trip, err := srv.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound.WrapMessage("trip lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load trip")
	}

	return trip, nil
}

func (srv *tripService) ListTrips(ctx context.Context) ([]*entity.Trip, error) {
	trips, err := srv.tripRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	return trips, nil
}

func (srv *tripService) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Trip, error) {
	trips, err := srv.tripRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips by driver")
	}

	return trips, nil
}

func (srv *tripService) ListTripsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*entity.Trip, error) {
	trips, err := srv.tripRepo.ListByPassenger(ctx, passengerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips by passenger")
	}

	return trips, nil
}

func (srv *tripService) UpdateTrip(ctx context.Context, input *usecase.UpdateTripInput) (*entity.Trip, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown trip status")
	}

	trip := &entity.Trip{
		ID:          input.ID,
		Origin:      input.Origin,
		Destination: input.Destination,
		Status:      input.Status,
		Fare:        input.Fare,
	}
	if err := srv.tripRepo.Update(ctx, trip); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound.WrapMessage("trip update failed")
		}

		return nil, errors.Wrap(err, "failed to update trip")
	}

	return srv.GetTrip(ctx, input.ID)
}

func (srv *tripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if err := srv.tripRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return domainerrors.ErrTripNotFound.WrapMessage("trip delete failed")
		}

		return errors.Wrap(err, "failed to delete trip")
	}

	srv.log(ctx).Debug("Trip deleted", slog.Any("tripID", id))

	return nil
}

// requireRole checks that the account exists and carries the expected role.
func requireRole(ctx context.Context, accountRepo repository.AccountRepository, id uuid.UUID, role entity.Role) error {
	account, err := accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("referenced account not found")
		}

		return errors.Wrap(err, "failed to verify account role")
	}
	if account.Role != role {
		return domainerrors.ErrValidationFailed.WrapMessage("account does not carry the required role")
	}

	return nil
}
