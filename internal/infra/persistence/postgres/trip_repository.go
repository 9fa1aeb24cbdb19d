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

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a trip repository backed by PostgreSQL.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var record model.TripModel
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip by id")
	}

	return tripToDomain(&record), nil
}

func (r *tripRepository) List(ctx context.Context) ([]*entity.Trip, error) {
	var records []model.TripModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	return tripsToDomain(records), nil
}

func (r *tripRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Trip, error) {
	var records []model.TripModel
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips by driver")
	}

	return tripsToDomain(records), nil
}

func (r *tripRepository) ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*entity.Trip, error) {
	var records []model.TripModel
	err := r.db.WithContext(ctx).
		Where("passenger_id = ?", passengerID).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips by passenger")
	}

	return tripsToDomain(records), nil
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	record := tripFromDomain(trip)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create trip")
	}

	trip.ID = record.ID
	trip.CreatedAt = record.CreatedAt
	trip.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	result := r.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id = ?", trip.ID).
		Updates(map[string]any{
			"origin":      trip.Origin,
			"destination": trip.Destination,
			"status":      string(trip.Status),
			"fare":        trip.Fare,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update trip")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TripModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete trip")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}

func tripToDomain(record *model.TripModel) *entity.Trip {
	return &entity.Trip{
		ID:          record.ID,
		DriverID:    record.DriverID,
		PassengerID: record.PassengerID,
		Origin:      record.Origin,
		Destination: record.Destination,
		Status:      entity.TripStatus(record.Status),
		Fare:        record.Fare,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func tripsToDomain(records []model.TripModel) []*entity.Trip {
	trips := make([]*entity.Trip, 0, len(records))
	for i := range records {
		trips = append(trips, tripToDomain(&records[i]))
	}

	return trips
}

func tripFromDomain(trip *entity.Trip) *model.TripModel {
	return &model.TripModel{
		ID:          trip.ID,
		DriverID:    trip.DriverID,
		PassengerID: trip.PassengerID,
		Origin:      trip.Origin,
		Destination: trip.Destination,
		Status:      string(trip.Status),
		Fare:        trip.Fare,
	}
}
