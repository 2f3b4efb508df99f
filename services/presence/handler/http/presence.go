package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/middleware"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
)

// PresenceHandler handles HTTP requests for the driver presence registry
type PresenceHandler struct {
	presenceUC presence.PresenceUC
}

// NewPresenceHandler creates a new presence HTTP handler
func NewPresenceHandler(presenceUC presence.PresenceUC) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: presenceUC,
	}
}

// NearbyDrivers returns available drivers around a point, nearest first.
// Radius and limit fall back to the dispatch defaults when omitted.
func (h *PresenceHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing lat parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing lng parameter")
	}

	var radiusMiles float64
	if raw := c.QueryParam("radius_miles"); raw != "" {
		radiusMiles, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_miles parameter")
		}
	}
	var max int
	if raw := c.QueryParam("max"); raw != "" {
		max, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid max parameter")
		}
	}

	drivers, err := h.presenceUC.NearbyDrivers(c.Request().Context(),
		models.Coordinates{Latitude: lat, Longitude: lng}, radiusMiles, max)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}

// GetPresence returns a driver's last known presence snapshot. Drivers may
// read only their own record.
func (h *PresenceHandler) GetPresence(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	if middleware.Role(c) == constants.RoleDriver && middleware.SubjectID(c) != driverID {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Drivers can only read their own presence")
	}

	snapshot, err := h.presenceUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver presence retrieved", snapshot)
}

// SetAvailability flips the caller's availability flag without moving them
func (h *PresenceHandler) SetAvailability(c echo.Context) error {
	if middleware.Role(c) != constants.RoleDriver {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only drivers have availability")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driverID := middleware.SubjectID(c)
	if err := h.presenceUC.SetAvailability(c.Request().Context(), driverID, req.IsAvailable); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", map[string]interface{}{
		"driver_id":    driverID,
		"is_available": req.IsAvailable,
	})
}
