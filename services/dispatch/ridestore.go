package dispatch

import (
	"context"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// RideStore is the slice of ride storage the dispatcher needs. The accept
// compare-and-set in AssignDriver is the commit point of every round: only
// one accept attempt per ride can observe true.
type RideStore interface {
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	SetCandidates(ctx context.Context, rideID string, candidates []string) error
	AssignDriver(ctx context.Context, rideID, driverID string, at time.Time) (bool, error)
	TransitionStatus(ctx context.Context, rideID string, from, to models.RideStatus, at time.Time) (bool, error)
}
