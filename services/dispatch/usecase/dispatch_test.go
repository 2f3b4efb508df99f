package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/dispatch/mocks"
	presencemocks "github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/mocks"
)

type dispatchFixture struct {
	uc       *DispatchUC
	store    *mocks.MockRideStore
	gw       *mocks.MockDispatchGW
	presence *presencemocks.MockPresenceUC
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockRideStore(ctrl)
	gw := mocks.NewMockDispatchGW(ctrl)
	presenceUC := presencemocks.NewMockPresenceUC(ctrl)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{
			SearchRadiusMiles: 5.0,
			MaxCandidates:     10,
			RoundTimeoutSec:   20,
		},
	}

	return &dispatchFixture{
		uc:       NewDispatchUC(cfg, store, presenceUC, gw),
		store:    store,
		gw:       gw,
		presence: presenceUC,
	}
}

func requestedRide(candidates ...string) *models.Ride {
	now := time.Now()
	return &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.New(),
		Status: models.RideStatusRequested,
		From: models.Place{
			Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
		},
		To: models.Place{
			Coordinates: models.Coordinates{Latitude: 40.7306, Longitude: -73.9352},
		},
		VehicleType: models.VehicleTypeEconomy,
		Candidates:  candidates,
		RequestedAt: now,
		UpdatedAt:   now,
	}
}

// openRound seeds the registry with an unresolved round, as Dispatch would
func (f *dispatchFixture) openRound(ride *models.Ride) *round {
	rnd := &round{
		rideID:     ride.RideID.String(),
		userID:     ride.UserID.String(),
		candidates: ride.Candidates,
		expiresAt:  time.Now().Add(time.Hour),
		timer:      time.AfterFunc(time.Hour, func() {}),
	}
	f.uc.mu.Lock()
	f.uc.rounds[rnd.rideID] = rnd
	f.uc.mu.Unlock()
	return rnd
}

func TestDispatch_OpensRoundAndFansOut(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide()
	rideID := ride.RideID.String()

	nearby := []*models.NearbyDriver{
		{DriverID: "driver-1", DistanceMiles: 0.5},
		{DriverID: "driver-2", DistanceMiles: 1.2},
	}

	f.presence.EXPECT().
		NearbyDrivers(gomock.Any(), ride.From.Coordinates, 5.0, 10).
		Return(nearby, nil)
	f.store.EXPECT().
		SetCandidates(gomock.Any(), rideID, []string{"driver-1", "driver-2"}).
		Return(nil)
	f.gw.EXPECT().
		PublishDispatchEvent(gomock.Any(), constants.SubjectDispatchOffered, gomock.Any()).
		Return(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	offered := make(map[string]models.RideOffer)
	var mu sync.Mutex
	f.gw.EXPECT().
		OfferRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(driverID string, offer models.RideOffer) {
			mu.Lock()
			offered[driverID] = offer
			mu.Unlock()
			wg.Done()
		}).
		Times(2)

	err := f.uc.Dispatch(context.Background(), ride)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, []string{"driver-1", "driver-2"}, ride.Candidates)
	assert.InDelta(t, 0.5, offered["driver-1"].DistanceMiles, 1e-9)
	assert.InDelta(t, 1.2, offered["driver-2"].DistanceMiles, 1e-9)
	assert.Equal(t, rideID, offered["driver-1"].RideID)

	// Round is registered and unresolved.
	f.uc.mu.RLock()
	rnd, open := f.uc.rounds[rideID]
	f.uc.mu.RUnlock()
	require.True(t, open)
	assert.False(t, rnd.resolved)
	rnd.timer.Stop()
}

func TestDispatch_NoCandidatesExpiresImmediately(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide()
	rideID := ride.RideID.String()

	f.presence.EXPECT().
		NearbyDrivers(gomock.Any(), ride.From.Coordinates, 5.0, 10).
		Return([]*models.NearbyDriver{}, nil)
	f.store.EXPECT().
		TransitionStatus(gomock.Any(), rideID, models.RideStatusRequested, models.RideStatusExpired, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().
		PublishDispatchEvent(gomock.Any(), constants.SubjectRideExpired, gomock.Any()).
		Return(nil)
	f.gw.EXPECT().
		NotifyParty(ride.UserID.String(), constants.EventRideExpired, gomock.Any())

	err := f.uc.Dispatch(context.Background(), ride)
	assert.ErrorIs(t, err, apperrors.ErrNoCandidates)

	f.uc.mu.RLock()
	_, open := f.uc.rounds[rideID]
	f.uc.mu.RUnlock()
	assert.False(t, open)
}

func TestTryAccept_WinnerResolvesRound(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1", "driver-2", "driver-3")
	rideID := ride.RideID.String()
	f.openRound(ride)

	f.store.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	f.store.EXPECT().
		AssignDriver(gomock.Any(), rideID, "driver-2", gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().NotifyParty("driver-1", constants.EventRideRejected, gomock.Any())
	f.gw.EXPECT().NotifyParty("driver-3", constants.EventRideRejected, gomock.Any())

	result, err := f.uc.TryAccept(context.Background(), rideID, "driver-2")
	require.NoError(t, err)
	assert.True(t, result.Won)

	f.uc.mu.RLock()
	_, open := f.uc.rounds[rideID]
	f.uc.mu.RUnlock()
	assert.False(t, open)
}

func TestTryAccept_NotACandidate(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1")
	f.openRound(ride)

	f.store.EXPECT().GetRide(gomock.Any(), ride.RideID.String()).Return(ride, nil)

	result, err := f.uc.TryAccept(context.Background(), ride.RideID.String(), "driver-9")
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.AcceptReasonNotACandidate, result.Reason)
}

func TestTryAccept_AfterResolution(t *testing.T) {
	f := newDispatchFixture(t)
	winner := uuid.New()
	ride := requestedRide("driver-1", winner.String())
	ride.Status = models.RideStatusAccepted
	ride.DriverID = &winner

	// Round already dropped; outcome reported from the durable record.
	f.store.EXPECT().GetRide(gomock.Any(), ride.RideID.String()).Return(ride, nil)

	result, err := f.uc.TryAccept(context.Background(), ride.RideID.String(), "driver-1")
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.AcceptReasonAlreadyAccepted, result.Reason)
}

func TestTryAccept_AfterExpiry(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1")
	ride.Status = models.RideStatusExpired

	f.store.EXPECT().GetRide(gomock.Any(), ride.RideID.String()).Return(ride, nil)

	result, err := f.uc.TryAccept(context.Background(), ride.RideID.String(), "driver-1")
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.AcceptReasonExpired, result.Reason)
}

func TestTryAccept_AfterRoundTeardownStillRequested(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1")

	// Round torn down (rider cancel in flight) but the cancel has not landed
	// yet: nobody accepted, so the offer is gone rather than taken.
	f.store.EXPECT().GetRide(gomock.Any(), ride.RideID.String()).Return(ride, nil)

	result, err := f.uc.TryAccept(context.Background(), ride.RideID.String(), "driver-1")
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.AcceptReasonExpired, result.Reason)
}

func TestTryAccept_StoreCASLoses(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1", "driver-2")
	rideID := ride.RideID.String()
	f.openRound(ride)

	f.store.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	f.store.EXPECT().
		AssignDriver(gomock.Any(), rideID, "driver-1", gomock.Any()).
		Return(false, nil)

	result, err := f.uc.TryAccept(context.Background(), rideID, "driver-1")
	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.AcceptReasonAlreadyAccepted, result.Reason)
}

// TestTryAccept_ConcurrentExactlyOneWinner hammers a single round with
// concurrent accepts and requires exactly one to win.
func TestTryAccept_ConcurrentExactlyOneWinner(t *testing.T) {
	f := newDispatchFixture(t)

	const drivers = 16
	candidates := make([]string, drivers)
	for i := range candidates {
		candidates[i] = uuid.New().String()
	}
	ride := requestedRide(candidates...)
	rideID := ride.RideID.String()
	f.openRound(ride)

	// Fake store commit: first assignment wins, the rest lose.
	var commitMu sync.Mutex
	assigned := false
	f.store.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil).AnyTimes()
	f.store.EXPECT().
		AssignDriver(gomock.Any(), rideID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ time.Time) (bool, error) {
			commitMu.Lock()
			defer commitMu.Unlock()
			if assigned {
				return false, nil
			}
			assigned = true
			return true, nil
		}).
		AnyTimes()
	f.gw.EXPECT().NotifyParty(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	results := make([]*models.AcceptResult, drivers)
	for i := 0; i < drivers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := f.uc.TryAccept(context.Background(), rideID, candidates[i])
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, result := range results {
		if result.Won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestCancelRound_WithdrawsOffers(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1", "driver-2")
	rideID := ride.RideID.String()
	f.openRound(ride)

	f.gw.EXPECT().NotifyParty("driver-1", constants.EventRideExpired, gomock.Any())
	f.gw.EXPECT().NotifyParty("driver-2", constants.EventRideExpired, gomock.Any())

	f.uc.CancelRound(context.Background(), rideID)

	f.uc.mu.RLock()
	_, open := f.uc.rounds[rideID]
	f.uc.mu.RUnlock()
	assert.False(t, open)

	// Cancelling again is a no-op.
	f.uc.CancelRound(context.Background(), rideID)
}

func TestExpireRound_TimesOutRequestedRide(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1")
	rideID := ride.RideID.String()
	f.openRound(ride)

	f.store.EXPECT().
		TransitionStatus(gomock.Any(), rideID, models.RideStatusRequested, models.RideStatusExpired, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().
		PublishDispatchEvent(gomock.Any(), constants.SubjectRideExpired, gomock.Any()).
		Return(nil)
	f.gw.EXPECT().NotifyParty(ride.UserID.String(), constants.EventRideExpired, gomock.Any())
	f.gw.EXPECT().NotifyParty("driver-1", constants.EventRideExpired, gomock.Any())

	f.uc.expireRound(rideID)

	f.uc.mu.RLock()
	_, open := f.uc.rounds[rideID]
	f.uc.mu.RUnlock()
	assert.False(t, open)
}

func TestExpireRound_RideAlreadyMovedOn(t *testing.T) {
	f := newDispatchFixture(t)
	ride := requestedRide("driver-1")
	rideID := ride.RideID.String()
	f.openRound(ride)

	// CAS misses: the ride was accepted before the timer fired. No events.
	f.store.EXPECT().
		TransitionStatus(gomock.Any(), rideID, models.RideStatusRequested, models.RideStatusExpired, gomock.Any()).
		Return(false, nil)

	f.uc.expireRound(rideID)
}

func TestExpireRound_UnknownRoundIsNoOp(t *testing.T) {
	f := newDispatchFixture(t)
	f.uc.expireRound(uuid.New().String())
}
