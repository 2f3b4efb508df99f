package rides

import (
	"context"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// RideRepo defines the ride storage operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	SetCandidates(ctx context.Context, rideID string, candidates []string) error

	// AssignDriver atomically moves a requested, unassigned ride to accepted
	// with the given driver. It reports whether this call won the assignment.
	AssignDriver(ctx context.Context, rideID, driverID string, at time.Time) (bool, error)

	// TransitionStatus conditionally moves a ride from one status to another,
	// stamping the transition time. It reports whether the update applied.
	TransitionStatus(ctx context.Context, rideID string, from, to models.RideStatus, at time.Time) (bool, error)

	// CompleteRide moves a started ride to completed and records the fare.
	CompleteRide(ctx context.Context, rideID string, fareUSD float64, at time.Time) (bool, error)

	GetActiveRideByUser(ctx context.Context, userID string) (*models.Ride, error)
	GetActiveRideByDriver(ctx context.Context, driverID string) (*models.Ride, error)
}
