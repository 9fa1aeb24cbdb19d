package usecase

import (
	"context"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase exposes read access to registered drivers and passengers.
type AccountUsecase interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListDrivers(ctx context.Context) ([]*entity.Account, error)
	ListPassengers(ctx context.Context) ([]*entity.Account, error)
}
