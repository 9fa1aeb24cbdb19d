package postgres

import (
	"context"

	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/repository"
	"ridehail/internal/errors"
	"ridehail/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a vehicle repository backed by PostgreSQL.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var record model.VehicleRecordModel
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by id")
	}

	return vehicleToDomain(&record), nil
}

func (r *vehicleRepository) FindByModelID(ctx context.Context, modelID uuid.UUID) (*entity.Vehicle, error) {
	var record model.VehicleRecordModel
	if err := r.db.WithContext(ctx).First(&record, "model_id = ?", modelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by model id")
	}

	return vehicleToDomain(&record), nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	var records []model.VehicleRecordModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehiclesToDomain(records), nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	record := &model.VehicleRecordModel{
		ID:      vehicle.ID,
		Plate:   vehicle.Plate,
		ModelID: vehicle.ModelID,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		switch {
		case isUniqueViolation(err, "plate"):
			return repository.ErrDuplicatePlate
		case isUniqueViolation(err, "model_id"):
			return repository.ErrModelAssigned
		case isForeignKeyViolation(err):
			return repository.ErrModelNotFound
		}

		return errors.Wrap(err, "failed to create vehicle")
	}

	vehicle.ID = record.ID
	vehicle.CreatedAt = record.CreatedAt
	vehicle.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	result := r.db.WithContext(ctx).
		Model(&model.VehicleRecordModel{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]any{
			"plate":    vehicle.Plate,
			"model_id": vehicle.ModelID,
		})
	if result.Error != nil {
		switch {
		case isUniqueViolation(result.Error, "plate"):
			return repository.ErrDuplicatePlate
		case isUniqueViolation(result.Error, "model_id"):
			return repository.ErrModelAssigned
		case isForeignKeyViolation(result.Error):
			return repository.ErrModelNotFound
		}

		return errors.Wrap(result.Error, "failed to update vehicle")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.VehicleRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

func (r *vehicleRepository) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	record := &model.DriverVehicleModel{
		DriverID:  driverID,
		VehicleID: vehicleID,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrVehicleNotFound
		}

		return errors.Wrap(err, "failed to assign driver to vehicle")
	}

	return nil
}

func (r *vehicleRepository) UnassignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("driver_id = ? AND vehicle_id = ?", driverID, vehicleID).
		Delete(&model.DriverVehicleModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unassign driver from vehicle")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

func (r *vehicleRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error) {
	var records []model.VehicleRecordModel
	err := r.db.WithContext(ctx).
		Joins("JOIN driver_vehicles dv ON dv.vehicle_id = vehicles.id").
		Where("dv.driver_id = ?", driverID).
		Order("vehicles.created_at").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles by driver")
	}

	return vehiclesToDomain(records), nil
}

func (r *vehicleRepository) ListDriverIDs(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.DriverVehicleModel{}).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at").
		Pluck("driver_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list driver ids for vehicle")
	}

	return ids, nil
}

func vehicleToDomain(record *model.VehicleRecordModel) *entity.Vehicle {
	return &entity.Vehicle{
		ID:        record.ID,
		Plate:     record.Plate,
		ModelID:   record.ModelID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func vehiclesToDomain(records []model.VehicleRecordModel) []*entity.Vehicle {
	vehicles := make([]*entity.Vehicle, 0, len(records))
	for i := range records {
		vehicles = append(vehicles, vehicleToDomain(&records[i]))
	}

	return vehicles
}
