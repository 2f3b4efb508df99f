package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/dispatch"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
)

// round tracks one open dispatch broadcast. All resolution paths (accept,
// expiry, rider cancel) serialize on mu, so a round resolves exactly once.
type round struct {
	mu         sync.Mutex
	rideID     string
	userID     string
	candidates []string
	expiresAt  time.Time
	timer      *time.Timer
	resolved   bool
	winner     string
}

// DispatchUC implements the dispatch broadcaster and acceptance arbiter.
// The in-memory round registry serializes accept attempts per ride; the
// conditional driver assignment in the ride store is the durable commit.
type DispatchUC struct {
	cfg        *models.Config
	rideStore  dispatch.RideStore
	presenceUC presence.PresenceUC
	dispatchGW dispatch.DispatchGW

	mu     sync.RWMutex
	rounds map[string]*round
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	rideStore dispatch.RideStore,
	presenceUC presence.PresenceUC,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		rideStore:  rideStore,
		presenceUC: presenceUC,
		dispatchGW: dispatchGW,
		rounds:     make(map[string]*round),
	}
}

// Dispatch opens a dispatch round for a requested ride: finds candidates
// around the pickup point, records them, arms the round timer, and fans the
// offer out to every candidate. A ride with no candidates expires
// immediately.
func (uc *DispatchUC) Dispatch(ctx context.Context, ride *models.Ride) error {
	rideID := ride.RideID.String()

	nearby, err := uc.presenceUC.NearbyDrivers(ctx, ride.From.Coordinates,
		uc.cfg.Dispatch.SearchRadiusMiles, uc.cfg.Dispatch.MaxCandidates)
	if err != nil {
		return err
	}

	if len(nearby) == 0 {
		uc.expireNow(ctx, ride)
		return apperrors.ErrNoCandidates
	}

	candidates := make([]string, len(nearby))
	for i, d := range nearby {
		candidates[i] = d.DriverID
	}

	if err := uc.rideStore.SetCandidates(ctx, rideID, candidates); err != nil {
		return err
	}
	ride.Candidates = candidates

	timeout := time.Duration(uc.cfg.Dispatch.RoundTimeoutSec) * time.Second
	expiresAt := time.Now().Add(timeout)

	rnd := &round{
		rideID:     rideID,
		userID:     ride.UserID.String(),
		candidates: candidates,
		expiresAt:  expiresAt,
	}
	rnd.timer = time.AfterFunc(timeout, func() {
		uc.expireRound(rideID)
	})

	uc.mu.Lock()
	uc.rounds[rideID] = rnd
	uc.mu.Unlock()

	offer := models.RideOffer{
		RideID:      rideID,
		From:        ride.From,
		To:          ride.To,
		VehicleType: ride.VehicleType,
		ExpiresAt:   expiresAt,
	}
	for _, d := range nearby {
		go func(driverID string, distance float64) {
			driverOffer := offer
			driverOffer.DistanceMiles = distance
			uc.dispatchGW.OfferRide(driverID, driverOffer)
		}(d.DriverID, d.DistanceMiles)
	}

	event := models.DispatchEvent{
		RideID:     rideID,
		UserID:     ride.UserID.String(),
		Candidates: candidates,
		ExpiresAt:  expiresAt,
	}
	if err := uc.dispatchGW.PublishDispatchEvent(ctx, constants.SubjectDispatchOffered, event); err != nil {
		logger.Warn("Failed to publish dispatch event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	logger.Info("Dispatch round opened",
		logger.String("ride_id", rideID),
		logger.Int("candidates", len(candidates)),
		logger.Duration("timeout", timeout))

	return nil
}

// TryAccept arbitrates a driver's accept attempt against the round. The
// registry lock serializes attempts; the store's conditional assignment
// decides the winner durably.
func (uc *DispatchUC) TryAccept(ctx context.Context, rideID, driverID string) (*models.AcceptResult, error) {
	ride, err := uc.rideStore.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsCandidate(driverID) {
		return &models.AcceptResult{
			RideID: rideID,
			Reason: models.AcceptReasonNotACandidate,
		}, nil
	}

	uc.mu.RLock()
	rnd, open := uc.rounds[rideID]
	uc.mu.RUnlock()

	if !open {
		// Round already resolved (or this node restarted); report from
		// the durable record.
		return uc.lateResult(ride), nil
	}

	rnd.mu.Lock()
	defer rnd.mu.Unlock()

	if rnd.resolved {
		return uc.lateResult(ride), nil
	}

	won, err := uc.rideStore.AssignDriver(ctx, rideID, driverID, time.Now())
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost to a concurrent resolution outside this registry.
		rnd.resolved = true
		return &models.AcceptResult{
			RideID: rideID,
			Reason: models.AcceptReasonAlreadyAccepted,
		}, nil
	}

	rnd.resolved = true
	rnd.winner = driverID
	rnd.timer.Stop()
	uc.dropRound(rideID)

	// Tell the losing candidates the offer is gone.
	for _, candidate := range rnd.candidates {
		if candidate == driverID {
			continue
		}
		uc.dispatchGW.NotifyParty(candidate, constants.EventRideRejected, models.AcceptResult{
			RideID: rideID,
			Reason: models.AcceptReasonAlreadyAccepted,
		})
	}

	logger.Info("Dispatch round won",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID))

	return &models.AcceptResult{RideID: rideID, Won: true}, nil
}

// CancelRound tears an open round down without expiring the ride; the caller
// owns the ride's own transition. Candidates are told the offer is withdrawn.
func (uc *DispatchUC) CancelRound(ctx context.Context, rideID string) {
	uc.mu.RLock()
	rnd, open := uc.rounds[rideID]
	uc.mu.RUnlock()
	if !open {
		return
	}

	rnd.mu.Lock()
	defer rnd.mu.Unlock()
	if rnd.resolved {
		return
	}
	rnd.resolved = true
	rnd.timer.Stop()
	uc.dropRound(rideID)

	for _, candidate := range rnd.candidates {
		uc.dispatchGW.NotifyParty(candidate, constants.EventRideExpired, models.AcceptResult{
			RideID: rideID,
			Reason: models.AcceptReasonExpired,
		})
	}
}

// expireRound fires when the round timer lapses with no winner
func (uc *DispatchUC) expireRound(rideID string) {
	uc.mu.RLock()
	rnd, open := uc.rounds[rideID]
	uc.mu.RUnlock()
	if !open {
		return
	}

	rnd.mu.Lock()
	defer rnd.mu.Unlock()
	if rnd.resolved {
		return
	}
	rnd.resolved = true
	uc.dropRound(rideID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	applied, err := uc.rideStore.TransitionStatus(ctx, rideID, models.RideStatusRequested, models.RideStatusExpired, now)
	if err != nil {
		logger.Error("Failed to expire ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return
	}
	if !applied {
		// The ride moved on (accepted or cancelled) before the timer fired.
		return
	}

	event := models.RideEvent{
		RideID:    rideID,
		UserID:    rnd.userID,
		Status:    models.RideStatusExpired,
		Timestamp: now,
	}
	if err := uc.dispatchGW.PublishDispatchEvent(ctx, constants.SubjectRideExpired, event); err != nil {
		logger.Warn("Failed to publish ride expired event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	uc.dispatchGW.NotifyParty(rnd.userID, constants.EventRideExpired, event)
	for _, candidate := range rnd.candidates {
		uc.dispatchGW.NotifyParty(candidate, constants.EventRideExpired, models.AcceptResult{
			RideID: rideID,
			Reason: models.AcceptReasonExpired,
		})
	}

	logger.Info("Dispatch round expired", logger.String("ride_id", rideID))
}

// expireNow expires a ride that never got a round: no drivers in range
func (uc *DispatchUC) expireNow(ctx context.Context, ride *models.Ride) {
	rideID := ride.RideID.String()
	now := time.Now()

	applied, err := uc.rideStore.TransitionStatus(ctx, rideID, models.RideStatusRequested, models.RideStatusExpired, now)
	if err != nil || !applied {
		logger.Warn("Failed to expire candidate-less ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return
	}

	event := models.RideEvent{
		RideID:    rideID,
		UserID:    ride.UserID.String(),
		Status:    models.RideStatusExpired,
		Timestamp: now,
	}
	if err := uc.dispatchGW.PublishDispatchEvent(ctx, constants.SubjectRideExpired, event); err != nil {
		logger.Warn("Failed to publish ride expired event",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
	uc.dispatchGW.NotifyParty(ride.UserID.String(), constants.EventRideExpired, event)
}

// lateResult reports a resolved round's outcome from the durable ride
// record. A ride still requested with no open round was never won — the
// round was torn down (cancel in flight, timer fired, node restart) — so
// the offer is gone, not taken.
func (uc *DispatchUC) lateResult(ride *models.Ride) *models.AcceptResult {
	result := &models.AcceptResult{RideID: ride.RideID.String()}
	switch ride.Status {
	case models.RideStatusRequested, models.RideStatusExpired, models.RideStatusCancelled:
		result.Reason = models.AcceptReasonExpired
	default:
		result.Reason = models.AcceptReasonAlreadyAccepted
	}
	return result
}

func (uc *DispatchUC) dropRound(rideID string) {
	uc.mu.Lock()
	delete(uc.rounds, rideID)
	uc.mu.Unlock()
}
