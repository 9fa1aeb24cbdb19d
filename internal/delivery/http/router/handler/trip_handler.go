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

// TripHandler exposes trip endpoints.
type TripHandler struct {
	uc     usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTripRequest struct {
	DriverID    uuid.UUID `json:"driverId" validate:"required"`
	PassengerID uuid.UUID `json:"passengerId" validate:"required"`
	Origin      string    `json:"origin" validate:"required,max=255"`
	Destination string    `json:"destination" validate:"required,max=255"`
	Fare        float64   `json:"fare" validate:"gte=0"`
}

type updateTripRequest struct {
	Origin      string  `json:"origin" validate:"required,max=255"`
	Destination string  `json:"destination" validate:"required,max=255"`
	Status      string  `json:"status" validate:"required"`
	Fare        float64 `json:"fare" validate:"gte=0"`
}

type tripResponse struct {
	ID          uuid.UUID `json:"id"`
	DriverID    uuid.UUID `json:"driverId"`
	PassengerID uuid.UUID `json:"passengerId"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	Fare        float64   `json:"fare"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTripResponse(trip *entity.Trip) tripResponse {
	return tripResponse{
		ID:          trip.ID,
		DriverID:    trip.DriverID,
		PassengerID: trip.PassengerID,
		Origin:      trip.Origin,
		Destination: trip.Destination,
		Status:      string(trip.Status),
		Fare:        trip.Fare,
		CreatedAt:   trip.CreatedAt,
	}
}

func newTripResponses(trips []*entity.Trip) []tripResponse {
	resps := make([]tripResponse, 0, len(trips))
	for _, trip := range trips {
		resps = append(resps, newTripResponse(trip))
	}

	return resps
}

// CreateTrip handles POST /trips.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid trip input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trip, err := h.uc.CreateTrip(c.Request().Context(), &usecase.CreateTripInput{
		DriverID:    req.DriverID,
		PassengerID: req.PassengerID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Fare:        req.Fare,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTripResponse(trip), "Trip created successfully")
}

// GetTrip handles GET /trips/:id.
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid trip id")
	}

	trip, err := h.uc.GetTrip(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTripResponse(trip), "")
}

// ListTrips handles GET /trips, optionally filtered by driver or passenger.
func (h *TripHandler) ListTrips(c echo.Context) error {
	ctx := c.Request().Context()

	if driverParam := c.QueryParam("driverId"); driverParam != "" {
		driverID, err := uuid.Parse(driverParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "invalid driver id")
		}
		trips, err := h.uc.ListTripsByDriver(ctx, driverID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newTripResponses(trips), "")
	}

	if passengerParam := c.QueryParam("passengerId"); passengerParam != "" {
		passengerID, err := uuid.Parse(passengerParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "invalid passenger id")
		}
		trips, err := h.uc.ListTripsByPassenger(ctx, passengerID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newTripResponses(trips), "")
	}

	trips, err := h.uc.ListTrips(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTripResponses(trips), "")
}

// UpdateTrip handles PUT /trips/:id.
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid trip id")
	}

	var req updateTripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid trip input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	trip, err := h.uc.UpdateTrip(c.Request().Context(), &usecase.UpdateTripInput{
		ID:          id,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      entity.TripStatus(req.Status),
		Fare:        req.Fare,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTripResponse(trip), "Trip updated successfully")
}

// DeleteTrip handles DELETE /trips/:id.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid trip id")
	}

	if err := h.uc.DeleteTrip(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Trip deleted successfully")
}
