package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// handleRideAccept processes a driver's answer to a ride offer. The accept
// race is arbitrated server-side; the driver gets back either the won ride
// or the losing reason.
func (h *WebSocketHandler) handleRideAccept(client *models.WebSocketClient, data json.RawMessage) error {
	if client.Role != constants.RoleDriver {
		return h.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Only drivers accept rides")
	}

	var msg models.WSRideMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.RideID == "" {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid ride payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := h.rideUC.AcceptRide(ctx, msg.RideID, client.SubjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return h.manager.SendErrorMessage(client, constants.ErrorRideNotFound, "Ride not found")
		}
		return h.manager.SendErrorMessage(client, constants.ErrorRideUpdate, "Failed to accept ride")
	}

	if result.Won {
		return h.manager.SendEvent(client, constants.EventRideAccepted, result)
	}
	return h.manager.SendEvent(client, constants.EventRideRejected, result)
}

// handleRideTransition processes an in-band lifecycle transition. Arrive,
// start and complete are driver-only; cancel is open to either party. The
// counterparty is notified by the lifecycle layer; the sender gets the
// updated ride echoed back.
func (h *WebSocketHandler) handleRideTransition(client *models.WebSocketClient, event string, data json.RawMessage) error {
	var msg models.WSRideMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid ride payload")
	}
	rideID := msg.RideID
	if rideID == "" {
		rideID = h.manager.BoundRide(client.SubjectID)
	}
	if rideID == "" {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Ride ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var ride *models.Ride
	var err error
	switch event {
	case constants.EventRideArrived:
		ride, err = h.driverOnly(ctx, client, rideID, h.rideUC.DriverArrived)
	case constants.EventRideStarted:
		ride, err = h.driverOnly(ctx, client, rideID, h.rideUC.StartRide)
	case constants.EventRideCompleted:
		ride, err = h.driverOnly(ctx, client, rideID, h.rideUC.CompleteRide)
	case constants.EventRideCancelled:
		ride, err = h.rideUC.CancelRide(ctx, rideID, client.SubjectID, client.Role)
	}
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return h.manager.SendErrorMessage(client, constants.ErrorRideNotFound, "Ride not found")
		case errors.Is(err, apperrors.ErrForbidden):
			return h.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Not a party to this ride")
		case errors.Is(err, apperrors.ErrInvalidTransition):
			return h.manager.SendErrorMessage(client, constants.ErrorRideUpdate, "Transition not allowed from current status")
		default:
			return h.manager.SendErrorMessage(client, constants.ErrorRideUpdate, "Failed to update ride")
		}
	}

	return h.manager.SendEvent(client, event, ride)
}

func (h *WebSocketHandler) driverOnly(
	ctx context.Context,
	client *models.WebSocketClient,
	rideID string,
	op func(ctx context.Context, rideID, driverID string) (*models.Ride, error),
) (*models.Ride, error) {
	if client.Role != constants.RoleDriver {
		return nil, apperrors.ErrForbidden
	}
	return op(ctx, rideID, client.SubjectID)
}
