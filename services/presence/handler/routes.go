package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
	httpHandler "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/handler/http"
)

// Handler combines all handlers for the presence service
type Handler struct {
	presenceHTTP *httpHandler.PresenceHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(presenceUC presence.PresenceUC, cfg *models.Config) *Handler {
	return &Handler{
		presenceHTTP: httpHandler.NewPresenceHandler(presenceUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers the presence registry HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	driversGroup := e.Group("/drivers", authMW)
	driversGroup.GET("/nearby", h.presenceHTTP.NearbyDrivers)
	driversGroup.GET("/:driverID/presence", h.presenceHTTP.GetPresence)
	driversGroup.PUT("/availability", h.presenceHTTP.SetAvailability)
}
