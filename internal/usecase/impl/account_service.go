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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		srv.log(ctx).Error("Failed to load account", slog.Any("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

func (srv *accountService) ListDrivers(ctx context.Context) ([]*entity.Account, error) {
	drivers, err := srv.accountRepo.ListByRole(ctx, entity.RoleDriver)
	if err != nil {
		srv.log(ctx).Error("Failed to list drivers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list drivers")
	}

	return drivers, nil
}

func (srv *accountService) ListPassengers(ctx context.Context) ([]*entity.Account, error) {
	passengers, err := srv.accountRepo.ListByRole(ctx, entity.RolePassenger)
	if err != nil {
		srv.log(ctx).Error("Failed to list passengers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list passengers")
	}

	return passengers, nil
}
