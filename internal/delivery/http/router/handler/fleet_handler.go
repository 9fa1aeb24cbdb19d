package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ridehail/internal/delivery/http/response"
	"ridehail/internal/domain/entity"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FleetHandler exposes vehicle model, vehicle and assignment endpoints.
type FleetHandler struct {
	uc     usecase.FleetUsecase
	logger *slog.Logger
}

// NewFleetHandler is the constructor for FleetHandler, injected by Fx.
func NewFleetHandler(uc usecase.FleetUsecase, logger *slog.Logger) *FleetHandler {
	return &FleetHandler{
		uc:     uc,
		logger: logger,
	}
}

type modelRequest struct {
	Brand string `json:"brand" validate:"required,max=100"`
	Year  int    `json:"year" validate:"required,gte=1950,lte=2100"`
}

type vehicleRequest struct {
	Plate   string    `json:"plate" validate:"required,max=20"`
	ModelID uuid.UUID `json:"modelId" validate:"required"`
}

type modelResponse struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

type vehicleResponse struct {
	ID        uuid.UUID `json:"id"`
	Plate     string    `json:"plate"`
	ModelID   uuid.UUID `json:"modelId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newModelResponse(model *entity.VehicleModel) modelResponse {
	return modelResponse{
		ID:        model.ID,
		Brand:     model.Brand,
		Year:      model.Year,
		CreatedAt: model.CreatedAt,
	}
}

func newVehicleResponse(vehicle *entity.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:        vehicle.ID,
		Plate:     vehicle.Plate,
		ModelID:   vehicle.ModelID,
		CreatedAt: vehicle.CreatedAt,
	}
}

func newVehicleResponses(vehicles []*entity.Vehicle) []vehicleResponse {
	resps := make([]vehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		resps = append(resps, newVehicleResponse(vehicle))
	}

	return resps
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// --- Vehicle models ---

// CreateModel handles POST /models.
func (h *FleetHandler) CreateModel(c echo.Context) error {
	var req modelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid model input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	model, err := h.uc.CreateModel(c.Request().Context(), &usecase.CreateModelInput{
		Brand: req.Brand,
		Year:  req.Year,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newModelResponse(model), "Model created successfully")
}

// GetModel handles GET /models/:id.
func (h *FleetHandler) GetModel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid model id")
	}

	model, err := h.uc.GetModel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newModelResponse(model), "")
}

// ListModels handles GET /models.
func (h *FleetHandler) ListModels(c echo.Context) error {
	models, err := h.uc.ListModels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resps := make([]modelResponse, 0, len(models))
	for _, model := range models {
		resps = append(resps, newModelResponse(model))
	}

	return response.Success(c, http.StatusOK, resps, "")
}

// UpdateModel handles PUT /models/:id.
func (h *FleetHandler) UpdateModel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid model id")
	}

	var req modelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid model input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	model, err := h.uc.UpdateModel(c.Request().Context(), &usecase.UpdateModelInput{
		ID:    id,
		Brand: req.Brand,
		Year:  req.Year,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newModelResponse(model), "Model updated successfully")
}

// DeleteModel handles DELETE /models/:id.
func (h *FleetHandler) DeleteModel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid model id")
	}

	if err := h.uc.DeleteModel(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Model deleted successfully")
}

// --- Vehicles ---

// CreateVehicle handles POST /vehicles.
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid vehicle input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.CreateVehicle(c.Request().Context(), &usecase.CreateVehicleInput{
		Plate:   req.Plate,
		ModelID: req.ModelID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVehicleResponse(vehicle), "Vehicle created successfully")
}

// GetVehicle handles GET /vehicles/:id.
func (h *FleetHandler) GetVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	vehicle, err := h.uc.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponse(vehicle), "")
}

// ListVehicles handles GET /vehicles.
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.uc.ListVehicles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponses(vehicles), "")
}

// UpdateVehicle handles PUT /vehicles/:id.
func (h *FleetHandler) UpdateVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid vehicle input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	vehicle, err := h.uc.UpdateVehicle(c.Request().Context(), &usecase.UpdateVehicleInput{
		ID:      id,
		Plate:   req.Plate,
		ModelID: req.ModelID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponse(vehicle), "Vehicle updated successfully")
}

// DeleteVehicle handles DELETE /vehicles/:id.
func (h *FleetHandler) DeleteVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vehicle deleted successfully")
}

// --- Driver assignments ---

// AssignVehicle handles POST /drivers/:id/vehicles/:vehicleID.
func (h *FleetHandler) AssignVehicle(c echo.Context) error {
	driverID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid driver id")
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	if err := h.uc.AssignDriver(c.Request().Context(), vehicleID, driverID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Driver assigned successfully")
}

// UnassignVehicle handles DELETE /drivers/:id/vehicles/:vehicleID.
func (h *FleetHandler) UnassignVehicle(c echo.Context) error {
	driverID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid driver id")
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	if err := h.uc.UnassignDriver(c.Request().Context(), vehicleID, driverID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Driver unassigned successfully")
}

// ListDriverVehicles handles GET /drivers/:id/vehicles.
func (h *FleetHandler) ListDriverVehicles(c echo.Context) error {
	driverID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid driver id")
	}

	vehicles, err := h.uc.ListVehiclesByDriver(c.Request().Context(), driverID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVehicleResponses(vehicles), "")
}

// ListVehicleDrivers handles GET /vehicles/:id/drivers.
func (h *FleetHandler) ListVehicleDrivers(c echo.Context) error {
	vehicleID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid vehicle id")
	}

	drivers, err := h.uc.ListDriversByVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(drivers), "")
}
