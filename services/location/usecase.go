package location

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// LocationUC defines the live location relay operations
type LocationUC interface {
	RelayDriverLocation(ctx context.Context, driverID, rideID string, loc models.Location) error
	RelayRiderLocation(ctx context.Context, userID, rideID string, loc models.Location) error
	LastLocation(ctx context.Context, rideID, role string) (*models.Location, error)
}

// RideReader is the slice of ride storage the relay needs to resolve the
// counterparty of a bound ride.
type RideReader interface {
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
}
