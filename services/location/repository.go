package location

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// LocationRepo defines last-known-location storage for active rides
type LocationRepo interface {
	StoreLastLocation(ctx context.Context, rideID, role string, loc models.Location) error
	GetLastLocation(ctx context.Context, rideID, role string) (*models.Location, error)
}
