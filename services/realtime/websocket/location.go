package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// requestTimeout bounds the backend work done for one inbound message
const requestTimeout = 5 * time.Second

// handleLocationUpdate processes a location beacon. Driver beacons always
// refresh the presence registry; when the sender is bound to an active ride
// the position is also relayed to the counterparty.
func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var update models.WSLocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid location payload")
	}

	loc := models.Location{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Timestamp: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// The binding is written by accept/complete/cancel on other goroutines;
	// read it through the manager, never off the shared client.
	boundRideID := h.manager.BoundRide(client.SubjectID)

	if client.Role == constants.RoleDriver {
		available := true
		if update.IsAvailable != nil {
			available = *update.IsAvailable
		}
		if boundRideID != "" {
			// a driver on an active ride is never announced available
			available = false
		}
		if err := h.presenceUC.UpdateDriverLocation(ctx, client.SubjectID, loc, available); err != nil {
			if errors.Is(err, apperrors.ErrInvalidCoordinates) {
				return h.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, "Invalid coordinates")
			}
			return h.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to update location")
		}
	}

	if boundRideID == "" {
		return nil
	}

	var err error
	if client.Role == constants.RoleDriver {
		err = h.locationUC.RelayDriverLocation(ctx, client.SubjectID, boundRideID, loc)
	} else {
		err = h.locationUC.RelayRiderLocation(ctx, client.SubjectID, boundRideID, loc)
	}
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCoordinates):
			return h.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, "Invalid coordinates")
		case errors.Is(err, apperrors.ErrInvalidTransition), errors.Is(err, apperrors.ErrNotFound):
			// Ride ended while the binding lingered; drop it quietly.
			h.manager.UnbindRide(client.SubjectID)
			return nil
		default:
			return h.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to relay location")
		}
	}
	return nil
}
