package usecase

import (
	"context"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/utils"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence"
)

// PresenceUC implements the presence registry use cases
type PresenceUC struct {
	cfg          *models.Config
	presenceRepo presence.PresenceRepo
}

// NewPresenceUC creates a new presence usecase
func NewPresenceUC(cfg *models.Config, presenceRepo presence.PresenceRepo) *PresenceUC {
	return &PresenceUC{
		cfg:          cfg,
		presenceRepo: presenceRepo,
	}
}

// UpdateDriverLocation validates and stores a driver's location beacon
func (uc *PresenceUC) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, available bool) error {
	if err := utils.ValidateCoordinates(location.Coords()); err != nil {
		return err
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now()
	}

	if err := uc.presenceRepo.UpdateDriverLocation(ctx, driverID, location, available); err != nil {
		logger.Error("Failed to update driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return err
	}
	return nil
}

// GetDriver retrieves a driver's presence record
func (uc *PresenceUC) GetDriver(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	return uc.presenceRepo.GetDriver(ctx, driverID)
}

// SetAvailability flips a driver's availability flag
func (uc *PresenceUC) SetAvailability(ctx context.Context, driverID string, available bool) error {
	return uc.presenceRepo.SetAvailability(ctx, driverID, available)
}

// RemoveDriver drops a driver from the registry, typically on disconnect
func (uc *PresenceUC) RemoveDriver(ctx context.Context, driverID string) error {
	return uc.presenceRepo.RemoveDriver(ctx, driverID)
}

// NearbyDrivers finds available drivers around a pickup point
func (uc *PresenceUC) NearbyDrivers(ctx context.Context, point models.Coordinates, radiusMiles float64, max int) ([]*models.NearbyDriver, error) {
	if err := utils.ValidateCoordinates(point); err != nil {
		return nil, err
	}
	if radiusMiles <= 0 {
		radiusMiles = uc.cfg.Dispatch.SearchRadiusMiles
	}
	if max <= 0 {
		max = uc.cfg.Dispatch.MaxCandidates
	}
	return uc.presenceRepo.NearbyDrivers(ctx, point, radiusMiles, max)
}
