package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/database"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
)

// LocationRepo stores last known per-party locations for active rides in Redis
type LocationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{redisClient: redisClient}
}

// StoreLastLocation overwrites a party's last known location for a ride
func (r *LocationRepo) StoreLastLocation(ctx context.Context, rideID, role string, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyRideLocation, rideID, role)
	record := map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldUpdatedAt: loc.Timestamp.UnixMilli(),
	}
	if err := r.redisClient.HSet(ctx, key, record); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	return nil
}

// GetLastLocation retrieves a party's last known location for a ride
func (r *LocationRepo) GetLastLocation(ctx context.Context, rideID, role string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyRideLocation, rideID, role)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read location: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrNotFound
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt location record: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt location record: %w", err)
	}
	updatedMilli, _ := strconv.ParseInt(fields[constants.FieldUpdatedAt], 10, 64)

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.UnixMilli(updatedMilli),
	}, nil
}
