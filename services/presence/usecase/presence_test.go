package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/mocks"
)

func newTestConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			SearchRadiusMiles: 5.0,
			MaxCandidates:     10,
		},
		Presence: models.PresenceConfig{
			FreshnessWindowSec: 90,
		},
	}
}

func TestUpdateDriverLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	loc := models.Location{Latitude: 40.7128, Longitude: -74.0060, Timestamp: time.Now()}
	mockRepo.EXPECT().
		UpdateDriverLocation(gomock.Any(), "driver-1", loc, true).
		Return(nil)

	err := uc.UpdateDriverLocation(context.Background(), "driver-1", loc, true)
	assert.NoError(t, err)
}

func TestUpdateDriverLocation_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	loc := models.Location{Latitude: 91.0, Longitude: -74.0060, Timestamp: time.Now()}
	err := uc.UpdateDriverLocation(context.Background(), "driver-1", loc, true)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestUpdateDriverLocation_FillsZeroTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	loc := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	mockRepo.EXPECT().
		UpdateDriverLocation(gomock.Any(), "driver-1", gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, stored models.Location, _ bool) error {
			assert.False(t, stored.Timestamp.IsZero())
			return nil
		})

	err := uc.UpdateDriverLocation(context.Background(), "driver-1", loc, false)
	assert.NoError(t, err)
}

func TestUpdateDriverLocation_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	loc := models.Location{Latitude: 40.7128, Longitude: -74.0060, Timestamp: time.Now()}
	mockRepo.EXPECT().
		UpdateDriverLocation(gomock.Any(), "driver-1", loc, true).
		Return(errors.New("redis down"))

	err := uc.UpdateDriverLocation(context.Background(), "driver-1", loc, true)
	assert.Error(t, err)
}

func TestNearbyDrivers_DefaultsFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	point := models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	expected := []*models.NearbyDriver{{DriverID: "driver-1", DistanceMiles: 0.4}}

	mockRepo.EXPECT().
		NearbyDrivers(gomock.Any(), point, 5.0, 10).
		Return(expected, nil)

	nearby, err := uc.NearbyDrivers(context.Background(), point, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, expected, nearby)
}

func TestNearbyDrivers_InvalidPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	uc := NewPresenceUC(newTestConfig(), mockRepo)

	point := models.Coordinates{Latitude: 40.7128, Longitude: -200}
	_, err := uc.NearbyDrivers(context.Background(), point, 5, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}
