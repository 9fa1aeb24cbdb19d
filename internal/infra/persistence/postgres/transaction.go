package postgres

import (
	"context"

	"ridehail/internal/domain/repository"
	"ridehail/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager with a
// single database transaction shared by every repository the callback uses.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a TransactionManager backed by GORM.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

func (m *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) ResetTicketRepo() repository.ResetTicketRepository {
	return NewResetTicketRepository(f.tx)
}

func (f *gormRepositoryFactory) VehicleRepo() repository.VehicleRepository {
	return NewVehicleRepository(f.tx)
}

func (f *gormRepositoryFactory) ModelRepo() repository.VehicleModelRepository {
	return NewVehicleModelRepository(f.tx)
}

func (f *gormRepositoryFactory) TripRepo() repository.TripRepository {
	return NewTripRepository(f.tx)
}
