package gateway

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	natspkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/nats"
	ws "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/websocket"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides"
)

// RideGW publishes ride lifecycle events to NATS and pushes best-effort
// notifications to connected WebSocket parties.
type RideGW struct {
	producer  *natspkg.Producer
	wsManager *ws.Manager
}

// NewRideGW creates a new ride gateway
func NewRideGW(producer *natspkg.Producer, wsManager *ws.Manager) rides.RideGW {
	return &RideGW{
		producer:  producer,
		wsManager: wsManager,
	}
}

// PublishRideEvent publishes a lifecycle event to NATS
func (g *RideGW) PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error {
	return g.producer.Publish(subject, event)
}

// NotifyParty pushes an event to a connected party. A disconnected party is
// not an error; they catch up through the HTTP API.
func (g *RideGW) NotifyParty(subjectID, event string, payload interface{}) {
	g.wsManager.NotifyClient(subjectID, event, payload)
}

// BindRide attaches a party's session to an active ride for location relay
func (g *RideGW) BindRide(subjectID, rideID string) {
	g.wsManager.BindRide(subjectID, rideID)
	logger.Debug("Bound session to ride",
		logger.String("subject_id", subjectID),
		logger.String("ride_id", rideID))
}

// UnbindRide detaches a party's session from its ride
func (g *RideGW) UnbindRide(subjectID string) {
	g.wsManager.UnbindRide(subjectID)
}
