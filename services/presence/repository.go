package presence

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// PresenceRepo defines the presence registry storage operations
type PresenceRepo interface {
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, available bool) error
	GetDriver(ctx context.Context, driverID string) (*models.DriverPresence, error)
	SetAvailability(ctx context.Context, driverID string, available bool) error
	RemoveDriver(ctx context.Context, driverID string) error
	NearbyDrivers(ctx context.Context, point models.Coordinates, radiusMiles float64, max int) ([]*models.NearbyDriver, error)
}
