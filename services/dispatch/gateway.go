package dispatch

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// DispatchGW defines the dispatch gateway operations: fanning offers out to
// candidate drivers and publishing round events for external consumers.
type DispatchGW interface {
	OfferRide(driverID string, offer models.RideOffer)
	NotifyParty(subjectID, event string, payload interface{})
	PublishDispatchEvent(ctx context.Context, subject string, payload interface{}) error
}
