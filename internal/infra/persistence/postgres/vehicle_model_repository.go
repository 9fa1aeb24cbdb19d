package postgres

import (
	"context"

	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/repository"
	"ridehail/internal/errors"
	"ridehail/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleModelRepository struct {
	db *gorm.DB
}

// NewVehicleModelRepository creates a vehicle model repository backed by PostgreSQL.
func NewVehicleModelRepository(db *gorm.DB) repository.VehicleModelRepository {
	return &vehicleModelRepository{db: db}
}

func (r *vehicleModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error) {
	var record model.VehicleModelModel
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle model by id")
	}

	return modelToDomain(&record), nil
}

func (r *vehicleModelRepository) List(ctx context.Context) ([]*entity.VehicleModel, error) {
	var records []model.VehicleModelModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle models")
	}

	models := make([]*entity.VehicleModel, 0, len(records))
	for i := range records {
		models = append(models, modelToDomain(&records[i]))
	}

	return models, nil
}

func (r *vehicleModelRepository) Create(ctx context.Context, vehicleModel *entity.VehicleModel) error {
	record := &model.VehicleModelModel{
		ID:    vehicleModel.ID,
		Brand: vehicleModel.Brand,
		Year:  vehicleModel.Year,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create vehicle model")
	}

	vehicleModel.ID = record.ID
	vehicleModel.CreatedAt = record.CreatedAt
	vehicleModel.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *vehicleModelRepository) Update(ctx context.Context, vehicleModel *entity.VehicleModel) error {
	result := r.db.WithContext(ctx).
		Model(&model.VehicleModelModel{}).
		Where("id = ?", vehicleModel.ID).
		Updates(map[string]any{
			"brand": vehicleModel.Brand,
			"year":  vehicleModel.Year,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vehicle model")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModelNotFound
	}

	return nil
}

func (r *vehicleModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.VehicleModelModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle model")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModelNotFound
	}

	return nil
}

func modelToDomain(record *model.VehicleModelModel) *entity.VehicleModel {
	return &entity.VehicleModel{
		ID:        record.ID,
		Brand:     record.Brand,
		Year:      record.Year,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
