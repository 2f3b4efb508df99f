package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/database"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

func setupLocationRepo(t *testing.T) *LocationRepo {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewLocationRepository(database.NewRedisClientFrom(client))
}

func TestStoreAndGetLastLocation(t *testing.T) {
	repo := setupLocationRepo(t)
	ctx := context.Background()

	now := time.Now()
	loc := models.Location{Latitude: 40.7128, Longitude: -74.0060, Timestamp: now}
	require.NoError(t, repo.StoreLastLocation(ctx, "ride-1", constants.RoleDriver, loc))

	got, err := repo.GetLastLocation(ctx, "ride-1", constants.RoleDriver)
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, got.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, got.Longitude, 1e-9)
	assert.Equal(t, now.UnixMilli(), got.Timestamp.UnixMilli())
}

func TestGetLastLocation_PerRoleIsolation(t *testing.T) {
	repo := setupLocationRepo(t)
	ctx := context.Background()

	driverLoc := models.Location{Latitude: 40.71, Longitude: -74.00, Timestamp: time.Now()}
	riderLoc := models.Location{Latitude: 40.73, Longitude: -73.93, Timestamp: time.Now()}
	require.NoError(t, repo.StoreLastLocation(ctx, "ride-1", constants.RoleDriver, driverLoc))
	require.NoError(t, repo.StoreLastLocation(ctx, "ride-1", constants.RoleUser, riderLoc))

	got, err := repo.GetLastLocation(ctx, "ride-1", constants.RoleUser)
	require.NoError(t, err)
	assert.InDelta(t, 40.73, got.Latitude, 1e-9)
}

func TestGetLastLocation_Missing(t *testing.T) {
	repo := setupLocationRepo(t)

	_, err := repo.GetLastLocation(context.Background(), "ride-x", constants.RoleDriver)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
