package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ridehail/internal/delivery/http/response"
	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler exposes driver and passenger read endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// accountResponse is the public projection of an account. Credential and
// session material never appears here.
type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Licence   string    `json:"licence,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAccountResponse(account *entity.Account) accountResponse {
	resp := accountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
	if account.DriverProfile != nil {
		resp.Licence = account.DriverProfile.Licence
		resp.Phone = account.DriverProfile.Phone
	}
	if account.PassengerProfile != nil {
		resp.Phone = account.PassengerProfile.Phone
	}

	return resp
}

func newAccountResponses(accounts []*entity.Account) []accountResponse {
	resps := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		resps = append(resps, newAccountResponse(account))
	}

	return resps
}

// ListDrivers handles GET /drivers.
func (h *AccountHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.uc.ListDrivers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(drivers), "")
}

// GetDriver handles GET /drivers/:id.
func (h *AccountHandler) GetDriver(c echo.Context) error {
	return h.getByRole(c, entity.RoleDriver)
}

// ListPassengers handles GET /passengers.
func (h *AccountHandler) ListPassengers(c echo.Context) error {
	passengers, err := h.uc.ListPassengers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(passengers), "")
}

// GetPassenger handles GET /passengers/:id.
func (h *AccountHandler) GetPassenger(c echo.Context) error {
	return h.getByRole(c, entity.RolePassenger)
}

// getByRole loads one account and 404s when its role does not match the
// collection the client asked in, so driver ids are invisible under /passengers
// and vice versa.
func (h *AccountHandler) getByRole(c echo.Context, role entity.Role) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid account id")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if account.Role != role {
		return errors.WithStack(domainerrors.ErrAccountNotFound)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "")
}
