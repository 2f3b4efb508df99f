package location

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// LocationGW defines the relay fanout: the counterparty's WebSocket session
// and the NATS stream for external consumers.
type LocationGW interface {
	ForwardLocation(subjectID string, update models.LocationUpdate)
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
}
