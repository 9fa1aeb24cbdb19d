// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ridehail/internal/delivery/http/middleware"
	"ridehail/internal/delivery/http/router/handler"
	"ridehail/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middlewares Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	FleetHandler   *handler.FleetHandler
	TripHandler    *handler.TripHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	fleetHandler   *handler.FleetHandler
	tripHandler    *handler.TripHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		fleetHandler:   params.FleetHandler,
		tripHandler:    params.TripHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/driver", r.authHandler.RegisterDriver)
		authGroup.POST("/passenger", r.authHandler.RegisterPassenger)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	authenticate := r.authMiddleware.Authenticate
	requireDriver := r.authMiddleware.RequireRole(entity.RoleDriver)
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Vehicle model routes; deleting a model is an admin operation.
	modelGroup := e.Group("/models", authenticate)
	{
		modelGroup.GET("", r.fleetHandler.ListModels)
		modelGroup.POST("", r.fleetHandler.CreateModel)
		modelGroup.GET("/:id", r.fleetHandler.GetModel)
		modelGroup.PUT("/:id", r.fleetHandler.UpdateModel)
		modelGroup.DELETE("/:id", r.fleetHandler.DeleteModel, requireAdmin)
	}

	// Vehicle routes; writes require the driver role.
	vehicleGroup := e.Group("/vehicles", authenticate)
	{
		vehicleGroup.GET("", r.fleetHandler.ListVehicles)
		vehicleGroup.POST("", r.fleetHandler.CreateVehicle, requireDriver)
		vehicleGroup.GET("/:id", r.fleetHandler.GetVehicle)
		vehicleGroup.PUT("/:id", r.fleetHandler.UpdateVehicle, requireDriver)
		vehicleGroup.DELETE("/:id", r.fleetHandler.DeleteVehicle, requireDriver)
		vehicleGroup.GET("/:id/drivers", r.fleetHandler.ListVehicleDrivers)
	}

	// Trip routes
	tripGroup := e.Group("/trips", authenticate)
	{
		tripGroup.GET("", r.tripHandler.ListTrips)
		tripGroup.POST("", r.tripHandler.CreateTrip)
		tripGroup.GET("/:id", r.tripHandler.GetTrip)
		tripGroup.PUT("/:id", r.tripHandler.UpdateTrip)
		tripGroup.DELETE("/:id", r.tripHandler.DeleteTrip)
	}

	// Account directories
	driverGroup := e.Group("/drivers", authenticate)
	{
		driverGroup.GET("", r.accountHandler.ListDrivers)
		driverGroup.GET("/:id", r.accountHandler.GetDriver)
		driverGroup.GET("/:id/vehicles", r.fleetHandler.ListDriverVehicles)
		driverGroup.POST("/:id/vehicles/:vehicleID", r.fleetHandler.AssignVehicle, requireDriver)
		driverGroup.DELETE("/:id/vehicles/:vehicleID", r.fleetHandler.UnassignVehicle, requireDriver)
	}

	passengerGroup := e.Group("/passengers", authenticate)
	{
		passengerGroup.GET("", r.accountHandler.ListPassengers)
		passengerGroup.GET("/:id", r.accountHandler.GetPassenger)
	}
}
