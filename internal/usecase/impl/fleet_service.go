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

// fleetService implements the FleetUsecase interface.
type fleetService struct {
	txManager   repository.TransactionManager
	vehicleRepo repository.VehicleRepository
	modelRepo   repository.VehicleModelRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// FleetServiceParams holds dependencies for fleetService, injected by Fx.
type FleetServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VehicleRepo repository.VehicleRepository
	ModelRepo   repository.VehicleModelRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewFleetService is the constructor for fleetService.
func NewFleetService(params FleetServiceParams) usecase.FleetUsecase {
	return &fleetService{
		txManager:   params.TxManager,
		vehicleRepo: params.VehicleRepo,
		modelRepo:   params.ModelRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *fleetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Vehicle models ---

func (srv *fleetService) CreateModel(ctx context.Context, input *usecase.CreateModelInput) (*entity.VehicleModel, error) {
	model := &entity.VehicleModel{
		Brand: input.Brand,
		Year:  input.Year,
	}
	if err := srv.modelRepo.Create(ctx, model); err != nil {
		srv.log(ctx).Error("Failed to create vehicle model", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vehicle model")
	}

	srv.log(ctx).Debug("Vehicle model created", slog.Any("modelID", model.ID))

	return model, nil
}

func (srv *fleetService) GetModel(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error) {
	model, err := srv.modelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, domainerrors.ErrModelNotFound.WrapMessage("model lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load vehicle model")
	}

	return model, nil
}

func (srv *fleetService) ListModels(ctx context.Context) ([]*entity.VehicleModel, error) {
	models, err := srv.modelRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle models")
	}

	return models, nil
}

func (srv *fleetService) UpdateModel(ctx context.Context, input *usecase.UpdateModelInput) (*entity.VehicleModel, error) {
	model := &entity.VehicleModel{
		ID:    input.ID,
		Brand: input.Brand,
		Year:  input.Year,
	}
	if err := srv.modelRepo.Update(ctx, model); err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, domainerrors.ErrModelNotFound.WrapMessage("model update failed")
		}

		return nil, errors.Wrap(err, "failed to update vehicle model")
	}

	return srv.GetModel(ctx, input.ID)
}

func (srv *fleetService) DeleteModel(ctx context.Context, id uuid.UUID) error {
	if err := srv.modelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return domainerrors.ErrModelNotFound.WrapMessage("model delete failed")
		}

		return errors.Wrap(err, "failed to delete vehicle model")
	}

	srv.log(ctx).Debug("Vehicle model deleted", slog.Any("modelID", id))

	return nil
}

// --- Vehicles ---

func (srv *fleetService) CreateVehicle(ctx context.Context, input *usecase.CreateVehicleInput) (*entity.Vehicle, error) {
	vehicle := &entity.Vehicle{
		Plate:   input.Plate,
		ModelID: input.ModelID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Model must exist before pairing; the unique index on model_id settles
		// races on the 1:1 pairing itself.
		if _, err := repoFactory.ModelRepo().FindByID(ctx, input.ModelID); err != nil {
			if errors.Is(err, repository.ErrModelNotFound) {
				return domainerrors.ErrModelNotFound.WrapMessage("vehicle creation failed")
			}

			return errors.Wrap(err, "failed to verify model for vehicle creation")
		}

		if err := repoFactory.VehicleRepo().Create(ctx, vehicle); err != nil {
			return mapVehicleError(err, "vehicle creation failed")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create vehicle", slog.String("plate", input.Plate), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Vehicle created", slog.Any("vehicleID", vehicle.ID))

	return vehicle, nil
}

func (srv *fleetService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound.WrapMessage("vehicle lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load vehicle")
	}

	return vehicle, nil
}

func (srv *fleetService) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	vehicles, err := srv.vehicleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehicles, nil
}

func (srv *fleetService) UpdateVehicle(ctx context.Context, input *usecase.UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle := &entity.Vehicle{
		ID:      input.ID,
		Plate:   input.Plate,
		ModelID: input.ModelID,
	}
	if err := srv.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, mapVehicleError(err, "vehicle update failed")
	}

	return srv.GetVehicle(ctx, input.ID)
}

func (srv *fleetService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if err := srv.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return domainerrors.ErrVehicleNotFound.WrapMessage("vehicle delete failed")
		}

		return errors.Wrap(err, "failed to delete vehicle")
	}

	srv.log(ctx).Debug("Vehicle deleted", slog.Any("vehicleID", id))

	return nil
}

// --- Driver assignments ---

func (srv *fleetService) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireRole(ctx, repoFactory.AccountRepo(), driverID, entity.RoleDriver); err != nil {
			return err
		}

		if _, err := repoFactory.VehicleRepo().FindByID(ctx, vehicleID); err != nil {
			if errors.Is(err, repository.ErrVehicleNotFound) {
				return domainerrors.ErrVehicleNotFound.WrapMessage("driver assignment failed")
			}

			return errors.Wrap(err, "failed to verify vehicle for assignment")
		}

		return repoFactory.VehicleRepo().AssignDriver(ctx, vehicleID, driverID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to assign driver", slog.Any("vehicleID", vehicleID), slog.Any("driverID", driverID), slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *fleetService) UnassignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	if err := srv.vehicleRepo.UnassignDriver(ctx, vehicleID, driverID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("driver is not assigned to this vehicle")
		}

		return errors.Wrap(err, "failed to unassign driver")
	}

	return nil
}

func (srv *fleetService) ListVehiclesByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error) {
	if err := requireRole(ctx, srv.accountRepo, driverID, entity.RoleDriver); err != nil {
		return nil, err
	}

	vehicles, err := srv.vehicleRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles by driver")
	}

	return vehicles, nil
}

func (srv *fleetService) ListDriversByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Account, error) {
	if _, err := srv.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound.WrapMessage("driver listing failed")
		}

		return nil, errors.Wrap(err, "failed to verify vehicle")
	}

	ids, err := srv.vehicleRepo.ListDriverIDs(ctx, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list driver ids")
	}

	drivers := make([]*entity.Account, 0, len(ids))
	for _, id := range ids {
		driver, err := srv.accountRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve assigned driver")
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}

func mapVehicleError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrVehicleNotFound):
		return domainerrors.ErrVehicleNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrModelNotFound):
		return domainerrors.ErrModelNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicatePlate):
		return domainerrors.ErrPlateAlreadyExists.WrapMessage(message)
	case errors.Is(err, repository.ErrModelAssigned):
		return domainerrors.ErrModelAlreadyAssigned.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
