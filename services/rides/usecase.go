package rides

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// RideUC defines the ride lifecycle business logic
type RideUC interface {
	SubmitRideRequest(ctx context.Context, userID string, req models.RideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	AcceptRide(ctx context.Context, rideID, driverID string) (*models.AcceptResult, error)
	DriverArrived(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	StartRide(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID string) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, subjectID, role string) (*models.Ride, error)
	ActiveRideFor(ctx context.Context, subjectID, role string) (*models.Ride, error)
}

// Dispatcher is the slice of the dispatch service the ride lifecycle needs:
// starting a candidate round for a new ride, arbitrating accepts, and tearing
// a round down when the rider cancels first.
type Dispatcher interface {
	Dispatch(ctx context.Context, ride *models.Ride) error
	TryAccept(ctx context.Context, rideID, driverID string) (*models.AcceptResult, error)
	CancelRound(ctx context.Context, rideID string)
}
