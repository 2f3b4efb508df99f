package rides

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// RideGW defines the ride gateway operations: NATS lifecycle events and
// best-effort WebSocket notifications to connected parties.
type RideGW interface {
	PublishRideEvent(ctx context.Context, subject string, event models.RideEvent) error
	NotifyParty(subjectID, event string, payload interface{})
	BindRide(subjectID, rideID string)
	UnbindRide(subjectID string)
}
