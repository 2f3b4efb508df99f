package usecase

import (
	"context"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/location"
)

// relayableStatuses are the ride states during which parties stream location
var relayableStatuses = map[models.RideStatus]bool{
	models.RideStatusAccepted: true,
	models.RideStatusArrived:  true,
	models.RideStatusStarted:  true,
}

// LocationUC implements the live location relay: each update from a bound
// party is validated, stored as the ride's last known position, forwarded to
// the counterparty, and published for external consumers.
type LocationUC struct {
	locationRepo location.LocationRepo
	rideReader   location.RideReader
	locationGW   location.LocationGW
}

// NewLocationUC creates a new location usecase
func NewLocationUC(
	locationRepo location.LocationRepo,
	rideReader location.RideReader,
	locationGW location.LocationGW,
) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
		rideReader:   rideReader,
		locationGW:   locationGW,
	}
}

// RelayDriverLocation forwards an assigned driver's position to the rider
func (uc *LocationUC) RelayDriverLocation(ctx context.Context, driverID, rideID string, loc models.Location) error {
	ride, err := uc.activeRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID == nil || ride.DriverID.String() != driverID {
		return apperrors.ErrForbidden
	}
	return uc.relay(ctx, ride, driverID, constants.RoleDriver, ride.UserID.String(), loc)
}

// RelayRiderLocation forwards the rider's position to the assigned driver
func (uc *LocationUC) RelayRiderLocation(ctx context.Context, userID, rideID string, loc models.Location) error {
	ride, err := uc.activeRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.UserID.String() != userID {
		return apperrors.ErrForbidden
	}
	if ride.DriverID == nil {
		return apperrors.ErrInvalidTransition
	}
	return uc.relay(ctx, ride, userID, constants.RoleUser, ride.DriverID.String(), loc)
}

// LastLocation retrieves a party's last relayed position for a ride
func (uc *LocationUC) LastLocation(ctx context.Context, rideID, role string) (*models.Location, error) {
	return uc.locationRepo.GetLastLocation(ctx, rideID, role)
}

func (uc *LocationUC) activeRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ride, err := uc.rideReader.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !relayableStatuses[ride.Status] {
		return nil, apperrors.ErrInvalidTransition
	}
	return ride, nil
}

func (uc *LocationUC) relay(ctx context.Context, ride *models.Ride, senderID, senderRole, counterpartyID string, loc models.Location) error {
	if err := utils.ValidateCoordinates(loc.Coords()); err != nil {
		return err
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	rideID := ride.RideID.String()
	if err := uc.locationRepo.StoreLastLocation(ctx, rideID, senderRole, loc); err != nil {
		logger.Warn("Failed to store last location",
			logger.String("ride_id", rideID),
			logger.String("role", senderRole),
			logger.Err(err))
	}

	update := models.LocationUpdate{
		RideID:    rideID,
		SubjectID: senderID,
		Role:      senderRole,
		Location:  loc,
		CreatedAt: time.Now(),
	}

	uc.locationGW.ForwardLocation(counterpartyID, update)

	if err := uc.locationGW.PublishLocationUpdate(ctx, update); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
	return nil
}
