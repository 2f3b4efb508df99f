package dispatch

import (
	"context"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// DispatchUC defines the dispatch round operations: opening a candidate
// round for a new ride, arbitrating accept attempts, and tearing rounds down.
type DispatchUC interface {
	Dispatch(ctx context.Context, ride *models.Ride) error
	TryAccept(ctx context.Context, rideID, driverID string) (*models.AcceptResult, error)
	CancelRound(ctx context.Context, rideID string)
}
