package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/middleware"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// CreateRide handles a rider's new ride request and opens a dispatch round
func (h *RidesHandler) CreateRide(c echo.Context) error {
	userID := middleware.SubjectID(c)
	if middleware.Role(c) != constants.RoleUser {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only riders can request rides")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.SubmitRideRequest(c.Request().Context(), userID, req)
	if err != nil {
		logger.Warn("Ride request rejected",
			logger.String("user_id", userID),
			logger.Err(err))
		// An exhausted dispatch round still created the ride; surface it so
		// the rider can retry with the ride record in hand. Any other failure
		// keeps its own status so retryable errors stay retryable.
		if ride != nil && errors.Is(err, apperrors.ErrNoCandidates) {
			return utils.SuccessResponse(c, http.StatusOK, "No drivers available", ride)
		}
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", ride)
}

// GetRide returns a single ride; only its rider or assigned driver may read it
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	subjectID := middleware.SubjectID(c)
	if !ride.IsParty(subjectID) {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Not a party to this ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// ActiveRide returns the caller's in-flight ride, if any
func (h *RidesHandler) ActiveRide(c echo.Context) error {
	ride, err := h.rideUC.ActiveRideFor(c.Request().Context(), middleware.SubjectID(c), middleware.Role(c))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active ride retrieved", ride)
}

// AcceptRide handles a driver's acceptance bid for an offered ride
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}
	if middleware.Role(c) != constants.RoleDriver {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only drivers can accept rides")
	}

	result, err := h.rideUC.AcceptRide(c.Request().Context(), rideID, middleware.SubjectID(c))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	if !result.Won {
		return utils.SuccessResponse(c, http.StatusConflict, "Ride no longer available", result)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", result)
}

// RideArrived marks the driver as arrived at the pickup point
func (h *RidesHandler) RideArrived(c echo.Context) error {
	return h.driverTransition(c, h.rideUC.DriverArrived, "Arrival recorded")
}

// StartRide marks the trip as started
func (h *RidesHandler) StartRide(c echo.Context) error {
	return h.driverTransition(c, h.rideUC.StartRide, "Trip started")
}

// CompleteRide finishes the trip and settles the fare
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	return h.driverTransition(c, h.rideUC.CompleteRide, "Trip completed")
}

// CancelRide cancels a ride on behalf of either party
func (h *RidesHandler) CancelRide(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), rideID, middleware.SubjectID(c), middleware.Role(c))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// driverTransition runs one of the driver-gated lifecycle operations. They
// all share the same request shape and error mapping.
func (h *RidesHandler) driverTransition(
	c echo.Context,
	op func(ctx context.Context, rideID, driverID string) (*models.Ride, error),
	message string,
) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}
	if middleware.Role(c) != constants.RoleDriver {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only drivers can perform this transition")
	}

	ride, err := op(c.Request().Context(), rideID, middleware.SubjectID(c))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}
