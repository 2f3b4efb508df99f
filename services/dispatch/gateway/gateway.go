package gateway

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	natspkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/nats"
	ws "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/websocket"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/dispatch"
)

// DispatchGW fans ride offers out over WebSocket and publishes dispatch
// round events to NATS.
type DispatchGW struct {
	producer  *natspkg.Producer
	wsManager *ws.Manager
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(producer *natspkg.Producer, wsManager *ws.Manager) dispatch.DispatchGW {
	return &DispatchGW{
		producer:  producer,
		wsManager: wsManager,
	}
}

// OfferRide pushes a ride offer to a candidate driver. Offline candidates
// simply miss the round.
func (g *DispatchGW) OfferRide(driverID string, offer models.RideOffer) {
	if !g.wsManager.IsConnected(driverID) {
		logger.Debug("Candidate not connected, skipping offer",
			logger.String("driver_id", driverID),
			logger.String("ride_id", offer.RideID))
		return
	}
	g.wsManager.NotifyClient(driverID, constants.EventRideOffer, offer)
}

// NotifyParty pushes a round outcome to a connected party, best-effort
func (g *DispatchGW) NotifyParty(subjectID, event string, payload interface{}) {
	g.wsManager.NotifyClient(subjectID, event, payload)
}

// PublishDispatchEvent publishes a dispatch round event to NATS
func (g *DispatchGW) PublishDispatchEvent(ctx context.Context, subject string, payload interface{}) error {
	return g.producer.Publish(subject, payload)
}
