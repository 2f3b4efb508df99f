package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/database"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
)

// PresenceRepo implements the presence registry over Redis. Each driver's
// record is a single hash so concurrent readers always observe a consistent
// (coordinates, availability) snapshot; the geo set and the available set
// are derived indexes maintained alongside it.
type PresenceRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
	freshness   time.Duration
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(cfg *models.Config, redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{
		cfg:         cfg,
		redisClient: redisClient,
		freshness:   time.Duration(cfg.Presence.FreshnessWindowSec) * time.Second,
	}
}

// UpdateDriverLocation writes a driver's presence record and maintains the
// geo and availability indexes. The geo set write is skipped when the driver
// has not left its previous geohash cell.
func (r *PresenceRepo) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, available bool) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	cell := utils.EncodeCoordinates(location.Coords(), utils.GeohashPrecision)

	prevCell, err := r.redisClient.GetClient().HGet(ctx, key, constants.FieldGeohash).Result()
	if err != nil {
		prevCell = "" // first sighting
	}

	record := map[string]interface{}{
		constants.FieldLatitude:  location.Latitude,
		constants.FieldLongitude: location.Longitude,
		constants.FieldAvailable: strconv.FormatBool(available),
		constants.FieldUpdatedAt: location.Timestamp.UnixMilli(),
		constants.FieldGeohash:   cell,
	}
	if err := r.redisClient.HSet(ctx, key, record); err != nil {
		return fmt.Errorf("failed to store presence record: %w", err)
	}

	if cell != prevCell {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
			return fmt.Errorf("failed to add to geo index: %w", err)
		}
	}

	return r.setAvailableMembership(ctx, driverID, available)
}

// GetDriver retrieves a driver's presence record
func (r *PresenceRepo) GetDriver(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read presence record: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrNotFound
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt presence record for %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt presence record for %s: %w", driverID, err)
	}
	available, _ := strconv.ParseBool(fields[constants.FieldAvailable])
	updatedMilli, _ := strconv.ParseInt(fields[constants.FieldUpdatedAt], 10, 64)

	return &models.DriverPresence{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.UnixMilli(updatedMilli),
		},
		IsAvailable: available,
		Geohash:     fields[constants.FieldGeohash],
	}, nil
}

// SetAvailability flips a driver's availability without touching coordinates.
// Used by the ride state machine on accept/completion/cancellation.
func (r *PresenceRepo) SetAvailability(ctx context.Context, driverID string, available bool) error {
	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)

	if _, err := r.GetDriver(ctx, driverID); err != nil {
		return err
	}

	record := map[string]interface{}{
		constants.FieldAvailable: strconv.FormatBool(available),
	}
	if err := r.redisClient.HSet(ctx, key, record); err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	return r.setAvailableMembership(ctx, driverID, available)
}

// RemoveDriver drops a driver from the registry and both indexes
func (r *PresenceRepo) RemoveDriver(ctx context.Context, driverID string) error {
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove from geo index: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove from available set: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverPresence, driverID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to remove presence record: %w", err)
	}
	return nil
}

// NearbyDrivers returns available, fresh drivers within radiusMiles of the
// point, ascending by distance with driver ID as the deterministic tie-break,
// truncated to max.
func (r *PresenceRepo) NearbyDrivers(ctx context.Context, point models.Coordinates, radiusMiles float64, max int) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, point.Longitude, point.Latitude, radiusMiles, "mi", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	now := time.Now()
	nearby := make([]*models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		driver, err := r.GetDriver(ctx, loc.Name)
		if err != nil {
			continue // evicted between geo query and record read
		}
		if !driver.IsAvailable || driver.Stale(now, r.freshness) {
			continue
		}
		nearby = append(nearby, &models.NearbyDriver{
			DriverID:      loc.Name,
			DistanceMiles: loc.Dist,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceMiles != nearby[j].DistanceMiles {
			return nearby[i].DistanceMiles < nearby[j].DistanceMiles
		}
		return nearby[i].DriverID < nearby[j].DriverID
	})

	if max > 0 && len(nearby) > max {
		nearby = nearby[:max]
	}
	return nearby, nil
}

func (r *PresenceRepo) setAvailableMembership(ctx context.Context, driverID string, available bool) error {
	if available {
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
			return fmt.Errorf("failed to add to available set: %w", err)
		}
		return nil
	}
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove from available set: %w", err)
	}
	return nil
}
