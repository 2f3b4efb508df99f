package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// RideRepo implements the ride repository over Postgres
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	ride_id, user_id, driver_id, status,
	from_lat, from_lng, from_address,
	to_lat, to_lng, to_address,
	vehicle_type, candidates,
	requested_at, accepted_at, arrived_at, started_at, ended_at,
	fare_usd, updated_at`

// CreateRide inserts a new ride in requested status
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	dto := ride.ToDTO()

	query := `
		INSERT INTO rides (
			ride_id, user_id, driver_id, status,
			from_lat, from_lng, from_address,
			to_lat, to_lng, to_address,
			vehicle_type, candidates,
			requested_at, fare_usd, updated_at
		) VALUES (
			:ride_id, :user_id, :driver_id, :status,
			:from_lat, :from_lng, :from_address,
			:to_lat, :to_lng, :to_address,
			:vehicle_type, :candidates,
			:requested_at, :fare_usd, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	query := `SELECT` + rideColumns + ` FROM rides WHERE ride_id = $1`

	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return dto.ToRide(), nil
}

// SetCandidates records the notified candidate set for a requested ride
func (r *RideRepo) SetCandidates(ctx context.Context, rideID string, candidates []string) error {
	query := `UPDATE rides SET candidates = $1, updated_at = $2 WHERE ride_id = $3 AND status = 'requested'`

	result, err := r.db.ExecContext(ctx, query, pq.StringArray(candidates), time.Now(), rideID)
	if err != nil {
		return fmt.Errorf("failed to set candidates: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignDriver performs the accept compare-and-set. The WHERE clause is the
// arbiter's commit point: exactly one accept can match an unassigned
// requested row.
func (r *RideRepo) AssignDriver(ctx context.Context, rideID, driverID string, at time.Time) (bool, error) {
	query := `
		UPDATE rides
		SET driver_id = $1, status = $2, accepted_at = $3, updated_at = $3
		WHERE ride_id = $4 AND status = $5 AND driver_id IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, driverID, models.RideStatusAccepted, at, rideID, models.RideStatusRequested)
	if err != nil {
		return false, fmt.Errorf("failed to assign driver: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

// timestampColumn maps a target status to the column stamped at that transition
func timestampColumn(to models.RideStatus) (string, bool) {
	switch to {
	case models.RideStatusArrived:
		return "arrived_at", true
	case models.RideStatusStarted:
		return "started_at", true
	case models.RideStatusCompleted, models.RideStatusCancelled, models.RideStatusExpired:
		return "ended_at", true
	}
	return "", false
}

// TransitionStatus conditionally moves a ride between statuses. The caller
// validates the transition against the lifecycle table; the conditional
// UPDATE guards against a concurrent transition winning first.
func (r *RideRepo) TransitionStatus(ctx context.Context, rideID string, from, to models.RideStatus, at time.Time) (bool, error) {
	column, ok := timestampColumn(to)
	if !ok {
		return false, fmt.Errorf("no timestamp column for status %s", to)
	}

	query := fmt.Sprintf(`
		UPDATE rides
		SET status = $1, %s = $2, updated_at = $2
		WHERE ride_id = $3 AND status = $4
	`, column)

	result, err := r.db.ExecContext(ctx, query, to, at, rideID, from)
	if err != nil {
		return false, fmt.Errorf("failed to transition ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

// CompleteRide moves a started ride to completed and records the final fare
func (r *RideRepo) CompleteRide(ctx context.Context, rideID string, fareUSD float64, at time.Time) (bool, error) {
	query := `
		UPDATE rides
		SET status = $1, fare_usd = $2, ended_at = $3, updated_at = $3
		WHERE ride_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, models.RideStatusCompleted, fareUSD, at, rideID, models.RideStatusStarted)
	if err != nil {
		return false, fmt.Errorf("failed to complete ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

// GetActiveRideByUser retrieves the rider's in-flight ride, if any
func (r *RideRepo) GetActiveRideByUser(ctx context.Context, userID string) (*models.Ride, error) {
	query := `SELECT` + rideColumns + `
		FROM rides
		WHERE user_id = $1 AND status IN ('requested', 'accepted', 'arrived', 'started')
		ORDER BY requested_at DESC
		LIMIT 1`

	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}
	return dto.ToRide(), nil
}

// GetActiveRideByDriver retrieves the driver's in-flight ride, if any
func (r *RideRepo) GetActiveRideByDriver(ctx context.Context, driverID string) (*models.Ride, error) {
	query := `SELECT` + rideColumns + `
		FROM rides
		WHERE driver_id = $1 AND status IN ('accepted', 'arrived', 'started')
		ORDER BY accepted_at DESC
		LIMIT 1`

	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active ride: %w", err)
	}
	return dto.ToRide(), nil
}
