package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides"
	httpHandler "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers the ride lifecycle HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	ridesGroup := e.Group("/rides", authMW)
	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("/active", h.ridesHTTP.ActiveRide)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.POST("/:rideID/accept", h.ridesHTTP.AcceptRide)
	ridesGroup.POST("/:rideID/arrive", h.ridesHTTP.RideArrived)
	ridesGroup.POST("/:rideID/start", h.ridesHTTP.StartRide)
	ridesGroup.POST("/:rideID/complete", h.ridesHTTP.CompleteRide)
	ridesGroup.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
}
