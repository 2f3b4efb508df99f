package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func sampleRide() *models.Ride {
	return &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.New(),
		Status: models.RideStatusRequested,
		From: models.Place{
			Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
			Address:     "Lower Manhattan",
		},
		To: models.Place{
			Coordinates: models.Coordinates{Latitude: 40.7306, Longitude: -73.9352},
			Address:     "East Village",
		},
		VehicleType: models.VehicleTypeEconomy,
		RequestedAt: time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := sampleRide()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"ride_id"}))

	_, err := repo.GetRide(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	userID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"ride_id", "user_id", "driver_id", "status",
		"from_lat", "from_lng", "from_address",
		"to_lat", "to_lng", "to_address",
		"vehicle_type", "candidates",
		"requested_at", "accepted_at", "arrived_at", "started_at", "ended_at",
		"fare_usd", "updated_at",
	}).AddRow(
		rideID, userID, driverID, "accepted",
		40.7128, -74.0060, "Lower Manhattan",
		40.7306, -73.9352, "East Village",
		"economy", pq.StringArray{driverID.String()},
		now, now, nil, nil, nil,
		0.0, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID.String()).
		WillReturnRows(rows)

	ride, err := repo.GetRide(context.Background(), rideID.String())
	assert.NoError(t, err)
	assert.Equal(t, rideID, ride.RideID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.NotNil(t, ride.DriverID)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.NotNil(t, ride.AcceptedAt)
	assert.Nil(t, ride.StartedAt)
	assert.True(t, ride.IsCandidate(driverID.String()))
}

func TestSetCandidates_RideGone(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides SET candidates")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetCandidates(context.Background(), "ride-1", []string{"driver-1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAssignDriver_Wins(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs("driver-1", models.RideStatusAccepted, at, "ride-1", models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.AssignDriver(context.Background(), "ride-1", "driver-1", at)
	assert.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignDriver_Loses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs("driver-2", models.RideStatusAccepted, at, "ride-1", models.RideStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.AssignDriver(context.Background(), "ride-1", "driver-2", at)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestTransitionStatus_Applied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(models.RideStatusArrived, at, "ride-1", models.RideStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.TransitionStatus(context.Background(), "ride-1", models.RideStatusAccepted, models.RideStatusArrived, at)
	assert.NoError(t, err)
	assert.True(t, applied)
}

func TestTransitionStatus_StaleFrom(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(models.RideStatusStarted, at, "ride-1", models.RideStatusArrived).
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.TransitionStatus(context.Background(), "ride-1", models.RideStatusArrived, models.RideStatusStarted, at)
	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestTransitionStatus_UnknownTarget(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	_, err := repo.TransitionStatus(context.Background(), "ride-1", models.RideStatusRequested, models.RideStatusRequested, time.Now())
	assert.Error(t, err)
}

func TestCompleteRide_RecordsFare(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(models.RideStatusCompleted, 12.25, at, "ride-1", models.RideStatusStarted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.CompleteRide(context.Background(), "ride-1", 12.25, at)
	assert.NoError(t, err)
	assert.True(t, applied)
}

func TestGetActiveRideByDriver_None(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("driver-1").
		WillReturnRows(sqlmock.NewRows([]string{"ride_id"}))

	_, err := repo.GetActiveRideByDriver(context.Background(), "driver-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
