package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides"
)

// RideUC implements the ride lifecycle business logic. State transitions are
// validated against the lifecycle table first, then applied with conditional
// updates so a concurrent transition can never double-apply.
type RideUC struct {
	cfg        *models.Config
	ridesRepo  rides.RideRepo
	ridesGW    rides.RideGW
	dispatcher rides.Dispatcher
	presenceUC presence.PresenceUC
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	ridesRepo rides.RideRepo,
	ridesGW rides.RideGW,
	dispatcher rides.Dispatcher,
	presenceUC presence.PresenceUC,
) *RideUC {
	return &RideUC{
		cfg:        cfg,
		ridesRepo:  ridesRepo,
		ridesGW:    ridesGW,
		dispatcher: dispatcher,
		presenceUC: presenceUC,
	}
}

// SubmitRideRequest validates and persists a new ride, then opens a dispatch
// round for it. A rider with an in-flight ride cannot open another.
func (uc *RideUC) SubmitRideRequest(ctx context.Context, userID string, req models.RideRequest) (*models.Ride, error) {
	if err := utils.ValidateCoordinates(req.From.Coordinates); err != nil {
		return nil, err
	}
	if err := utils.ValidateCoordinates(req.To.Coordinates); err != nil {
		return nil, err
	}
	if !req.VehicleType.Known() {
		return nil, apperrors.ErrInvalidVehicleType
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrForbidden
	}

	if existing, err := uc.ridesRepo.GetActiveRideByUser(ctx, userID); err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyResolved
	}

	now := time.Now()
	ride := &models.Ride{
		RideID:      uuid.New(),
		UserID:      uid,
		Status:      models.RideStatusRequested,
		From:        req.From,
		To:          req.To,
		VehicleType: req.VehicleType,
		RequestedAt: now,
		UpdatedAt:   now,
	}

	if err := uc.ridesRepo.CreateRide(ctx, ride); err != nil {
		logger.Error("Failed to create ride",
			logger.String("user_id", userID),
			logger.Err(err))
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectRideRequested, ride)

	if err := uc.dispatcher.Dispatch(ctx, ride); err != nil {
		if errors.Is(err, apperrors.ErrNoCandidates) {
			ride.Status = models.RideStatusExpired
		}
		return ride, err
	}

	uc.ridesGW.BindRide(userID, ride.RideID.String())
	return ride, nil
}

// GetRide retrieves a ride by ID
func (uc *RideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.ridesRepo.GetRide(ctx, rideID)
}

// AcceptRide arbitrates a driver's accept attempt. Exactly one attempt per
// ride wins; the winner triggers the accepted side effects.
func (uc *RideUC) AcceptRide(ctx context.Context, rideID, driverID string) (*models.AcceptResult, error) {
	result, err := uc.dispatcher.TryAccept(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if !result.Won {
		return result, nil
	}

	// The winning driver is no longer available for dispatch.
	if err := uc.presenceUC.SetAvailability(ctx, driverID, false); err != nil {
		logger.Warn("Failed to flip driver availability on accept",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	uc.ridesGW.BindRide(driverID, rideID)

	// The assignment is already durable; a read failure here must not be
	// reported to the winner as a failed accept. The rider-facing fan-out is
	// best-effort and is skipped when the record cannot be loaded.
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		logger.Error("Failed to load ride after accept",
			logger.String("ride_id", rideID),
			logger.String("driver_id", driverID),
			logger.Err(err))
		return result, nil
	}

	uc.ridesGW.BindRide(ride.UserID.String(), rideID)
	uc.publishEvent(ctx, constants.SubjectRideAccepted, ride)
	uc.ridesGW.NotifyParty(ride.UserID.String(), constants.EventRideAccepted, ride)

	return result, nil
}

// DriverArrived marks the assigned driver as waiting at the pickup point
func (uc *RideUC) DriverArrived(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	return uc.driverTransition(ctx, rideID, driverID,
		models.RideStatusAccepted, models.RideStatusArrived,
		constants.SubjectRideArrived, constants.EventRideArrived)
}

// StartRide marks the ride as in progress
func (uc *RideUC) StartRide(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	return uc.driverTransition(ctx, rideID, driverID,
		models.RideStatusArrived, models.RideStatusStarted,
		constants.SubjectRideStarted, constants.EventRideStarted)
}

// CompleteRide ends a started ride, computes the fare, and frees the driver
func (uc *RideUC) CompleteRide(ctx context.Context, rideID, driverID string) (*models.Ride, error) {
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeDriver(ride, driverID); err != nil {
		return nil, err
	}
	if !ride.Status.CanTransitionTo(models.RideStatusCompleted) {
		return nil, apperrors.ErrInvalidTransition
	}

	fare := utils.DistanceMiles(ride.From.Coordinates, ride.To.Coordinates) * uc.cfg.Rides.RatePerMileUSD
	now := time.Now()

	applied, err := uc.ridesRepo.CompleteRide(ctx, rideID, fare, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.ErrInvalidTransition
	}

	ride.Status = models.RideStatusCompleted
	ride.FareUSD = fare
	ride.EndedAt = &now
	ride.UpdatedAt = now

	uc.releaseParties(ctx, ride)
	uc.publishEvent(ctx, constants.SubjectRideCompleted, ride)
	uc.ridesGW.NotifyParty(ride.UserID.String(), constants.EventRideCompleted, ride)

	return ride, nil
}

// CancelRide cancels a ride on behalf of its rider or assigned driver.
// Started rides can no longer be cancelled.
func (uc *RideUC) CancelRide(ctx context.Context, rideID, subjectID, role string) (*models.Ride, error) {
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	switch role {
	case constants.RoleUser:
		if ride.UserID.String() != subjectID {
			return nil, apperrors.ErrForbidden
		}
	case constants.RoleDriver:
		if err := uc.authorizeDriver(ride, subjectID); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrForbidden
	}

	if !ride.Status.CanTransitionTo(models.RideStatusCancelled) {
		return nil, apperrors.ErrInvalidTransition
	}

	// A rider cancelling an open round tears the round down before any
	// driver can win it.
	if ride.Status == models.RideStatusRequested {
		uc.dispatcher.CancelRound(ctx, rideID)
	}

	now := time.Now()
	applied, err := uc.ridesRepo.TransitionStatus(ctx, rideID, ride.Status, models.RideStatusCancelled, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.ErrInvalidTransition
	}

	ride.Status = models.RideStatusCancelled
	ride.EndedAt = &now
	ride.UpdatedAt = now

	uc.releaseParties(ctx, ride)
	uc.publishEvent(ctx, constants.SubjectRideCancelled, ride)

	// Notify the counterparty, not the canceller.
	if ride.DriverID != nil {
		if role == constants.RoleUser {
			uc.ridesGW.NotifyParty(ride.DriverID.String(), constants.EventRideCancelled, ride)
		} else {
			uc.ridesGW.NotifyParty(ride.UserID.String(), constants.EventRideCancelled, ride)
		}
	}

	return ride, nil
}

// ActiveRideFor retrieves the in-flight ride bound to a party, if any
func (uc *RideUC) ActiveRideFor(ctx context.Context, subjectID, role string) (*models.Ride, error) {
	if role == constants.RoleDriver {
		return uc.ridesRepo.GetActiveRideByDriver(ctx, subjectID)
	}
	return uc.ridesRepo.GetActiveRideByUser(ctx, subjectID)
}

// driverTransition applies a driver-initiated lifecycle step and fans out
// the matching NATS and WebSocket events.
func (uc *RideUC) driverTransition(ctx context.Context, rideID, driverID string, from, to models.RideStatus, subject, wsEvent string) (*models.Ride, error) {
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeDriver(ride, driverID); err != nil {
		return nil, err
	}
	if !ride.Status.CanTransitionTo(to) {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now()
	applied, err := uc.ridesRepo.TransitionStatus(ctx, rideID, from, to, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.ErrInvalidTransition
	}

	ride.Status = to
	ride.UpdatedAt = now
	switch to {
	case models.RideStatusArrived:
		ride.ArrivedAt = &now
	case models.RideStatusStarted:
		ride.StartedAt = &now
	}

	uc.publishEvent(ctx, subject, ride)
	uc.ridesGW.NotifyParty(ride.UserID.String(), wsEvent, ride)

	return ride, nil
}

func (uc *RideUC) authorizeDriver(ride *models.Ride, driverID string) error {
	if ride.DriverID == nil || ride.DriverID.String() != driverID {
		return apperrors.ErrForbidden
	}
	return nil
}

// releaseParties frees the driver back into dispatch and unbinds both
// sessions from the ride.
func (uc *RideUC) releaseParties(ctx context.Context, ride *models.Ride) {
	if ride.DriverID != nil {
		if err := uc.presenceUC.SetAvailability(ctx, ride.DriverID.String(), true); err != nil {
			logger.Warn("Failed to restore driver availability",
				logger.String("driver_id", ride.DriverID.String()),
				logger.Err(err))
		}
		uc.ridesGW.UnbindRide(ride.DriverID.String())
	}
	uc.ridesGW.UnbindRide(ride.UserID.String())
}

func (uc *RideUC) publishEvent(ctx context.Context, subject string, ride *models.Ride) {
	event := models.RideEvent{
		RideID:    ride.RideID.String(),
		UserID:    ride.UserID.String(),
		Status:    ride.Status,
		FareUSD:   ride.FareUSD,
		Timestamp: ride.UpdatedAt,
	}
	if ride.DriverID != nil {
		event.DriverID = ride.DriverID.String()
	}
	if err := uc.ridesGW.PublishRideEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish ride event",
			logger.String("subject", subject),
			logger.String("ride_id", event.RideID),
			logger.Err(err))
	}
}
