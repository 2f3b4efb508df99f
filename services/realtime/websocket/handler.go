package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	pkgws "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/websocket"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides"
)

// WebSocketHandler is the realtime edge: it owns the message loop for every
// connected rider and driver and routes events to the domain use cases.
type WebSocketHandler struct {
	manager    *pkgws.Manager
	presenceUC presence.PresenceUC
	rideUC     rides.RideUC
	locationUC location.LocationUC
}

// NewWebSocketHandler creates a new realtime WebSocket handler
func NewWebSocketHandler(
	manager *pkgws.Manager,
	presenceUC presence.PresenceUC,
	rideUC rides.RideUC,
	locationUC location.LocationUC,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		presenceUC: presenceUC,
		rideUC:     rideUC,
		locationUC: locationUC,
	}
}

// HandleWebSocket handles new WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

// handleClientConnection manages one client's session lifetime
func (h *WebSocketHandler) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.Register(client)
	defer h.cleanupSession(client)

	h.rebindActiveRide(client)

	return h.messageLoop(client)
}

// rebindActiveRide reattaches a reconnecting party to its in-flight ride so
// relay traffic resumes without client-side bookkeeping.
func (h *WebSocketHandler) rebindActiveRide(client *models.WebSocketClient) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	ride, err := h.rideUC.ActiveRideFor(ctx, client.SubjectID, client.Role)
	if err != nil || ride == nil {
		return
	}
	h.manager.BindRide(client.SubjectID, ride.RideID.String())
	logger.Info("Rebound session to active ride",
		logger.String("subject_id", client.SubjectID),
		logger.String("ride_id", ride.RideID.String()))
}

// cleanupSession tears a closed session down. A driver who drops offline
// leaves the dispatch pool; a reconnect has already replaced the session and
// is left alone.
func (h *WebSocketHandler) cleanupSession(client *models.WebSocketClient) {
	h.manager.Deregister(client)

	if client.Role != constants.RoleDriver || h.manager.IsConnected(client.SubjectID) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := h.presenceUC.RemoveDriver(ctx, client.SubjectID); err != nil {
		logger.Debug("No presence record to remove on disconnect",
			logger.String("driver_id", client.SubjectID),
			logger.Err(err))
	}
}

// messageLoop reads and dispatches incoming messages until the connection
// closes
func (h *WebSocketHandler) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("subject_id", client.SubjectID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleMessage(client, msg); err != nil {
			logger.Warn("Failed to handle message",
				logger.String("subject_id", client.SubjectID),
				logger.Err(err))
		}
	}
}

// handleMessage routes one inbound message by event type
func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, wsMsg.Data)
	case constants.EventRideAccept:
		return h.handleRideAccept(client, wsMsg.Data)
	case constants.EventRideArrived, constants.EventRideStarted,
		constants.EventRideCompleted, constants.EventRideCancelled:
		return h.handleRideTransition(client, wsMsg.Event, wsMsg.Data)
	default:
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
