package gateway

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	natspkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/nats"
	ws "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/websocket"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location"
)

// LocationGW forwards relay updates to the counterparty's WebSocket session
// and publishes them to NATS.
type LocationGW struct {
	producer  *natspkg.Producer
	wsManager *ws.Manager
}

// NewLocationGW creates a new location gateway
func NewLocationGW(producer *natspkg.Producer, wsManager *ws.Manager) location.LocationGW {
	return &LocationGW{
		producer:  producer,
		wsManager: wsManager,
	}
}

// ForwardLocation pushes an update to the counterparty, best-effort
func (g *LocationGW) ForwardLocation(subjectID string, update models.LocationUpdate) {
	g.wsManager.NotifyClient(subjectID, constants.EventLocationUpdate, update)
}

// PublishLocationUpdate publishes an update to the location stream
func (g *LocationGW) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	return g.producer.Publish(constants.SubjectLocationUpdate, update)
}
