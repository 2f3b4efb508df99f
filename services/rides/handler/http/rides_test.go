package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/middleware"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/rides/mocks"
)

func newRideContext(t *testing.T, method, body string, subjectID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, "/", nil)
	}
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set(middleware.ContextKeySubjectID, subjectID)
	c.Set(middleware.ContextKeyRole, role)
	return c, recorder
}

func TestRidesHandler_CreateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	userID := uuid.New().String()
	ride := &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.MustParse(userID),
		Status: models.RideStatusRequested,
	}

	mockRideUC.EXPECT().
		SubmitRideRequest(gomock.Any(), userID, gomock.Any()).
		Return(ride, nil)

	body, _ := json.Marshal(models.RideRequest{
		From:        models.Place{Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
		To:          models.Place{Coordinates: models.Coordinates{Latitude: 40.7484, Longitude: -73.9857}},
		VehicleType: models.VehicleTypeEconomy,
	})
	c, recorder := newRideContext(t, http.MethodPost, string(body), userID, constants.RoleUser)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRidesHandler_CreateRide_DriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, recorder := newRideContext(t, http.MethodPost, "{}", uuid.New().String(), constants.RoleDriver)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRidesHandler_CreateRide_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	userID := uuid.New().String()
	expired := &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.MustParse(userID),
		Status: models.RideStatusExpired,
	}

	mockRideUC.EXPECT().
		SubmitRideRequest(gomock.Any(), userID, gomock.Any()).
		Return(expired, apperrors.ErrNoCandidates)

	c, recorder := newRideContext(t, http.MethodPost, "{}", userID, constants.RoleUser)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	// The ride record was still created, so the handler returns it rather
	// than a bare error.
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data models.Ride `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, models.RideStatusExpired, resp.Data.Status)
}

func TestRidesHandler_CreateRide_StorageFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	userID := uuid.New().String()
	stranded := &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.MustParse(userID),
		Status: models.RideStatusRequested,
	}

	// A ride record alongside an infrastructure failure must not be dressed
	// up as a no-drivers outcome.
	mockRideUC.EXPECT().
		SubmitRideRequest(gomock.Any(), userID, gomock.Any()).
		Return(stranded, fmt.Errorf("set candidates: %w", apperrors.ErrUnavailable))

	c, recorder := newRideContext(t, http.MethodPost, "{}", userID, constants.RoleUser)

	err := handler.CreateRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestRidesHandler_GetRide_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	ride := &models.Ride{
		RideID: uuid.New(),
		UserID: uuid.New(),
		Status: models.RideStatusRequested,
	}
	mockRideUC.EXPECT().
		GetRide(gomock.Any(), ride.RideID.String()).
		Return(ride, nil)

	c, recorder := newRideContext(t, http.MethodGet, "", uuid.New().String(), constants.RoleUser)
	c.SetParamNames("rideID")
	c.SetParamValues(ride.RideID.String())

	err := handler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRidesHandler_GetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New().String()
	mockRideUC.EXPECT().
		GetRide(gomock.Any(), rideID).
		Return(nil, apperrors.ErrNotFound)

	c, recorder := newRideContext(t, http.MethodGet, "", uuid.New().String(), constants.RoleUser)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)

	err := handler.GetRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRidesHandler_AcceptRide_Won(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New().String()
	driverID := uuid.New().String()
	mockRideUC.EXPECT().
		AcceptRide(gomock.Any(), rideID, driverID).
		Return(&models.AcceptResult{RideID: rideID, Won: true}, nil)

	c, recorder := newRideContext(t, http.MethodPost, "", driverID, constants.RoleDriver)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)

	err := handler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRidesHandler_AcceptRide_Lost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New().String()
	driverID := uuid.New().String()
	mockRideUC.EXPECT().
		AcceptRide(gomock.Any(), rideID, driverID).
		Return(&models.AcceptResult{RideID: rideID, Won: false, Reason: "already_accepted"}, nil)

	c, recorder := newRideContext(t, http.MethodPost, "", driverID, constants.RoleDriver)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)

	err := handler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var resp struct {
		Data models.AcceptResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Won)
	assert.Equal(t, "already_accepted", resp.Data.Reason)
}

func TestRidesHandler_AcceptRide_RiderForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, recorder := newRideContext(t, http.MethodPost, "", uuid.New().String(), constants.RoleUser)
	c.SetParamNames("rideID")
	c.SetParamValues(uuid.New().String())

	err := handler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRidesHandler_StartRide_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New().String()
	driverID := uuid.New().String()
	mockRideUC.EXPECT().
		StartRide(gomock.Any(), rideID, driverID).
		Return(nil, apperrors.ErrInvalidTransition)

	c, recorder := newRideContext(t, http.MethodPost, "", driverID, constants.RoleDriver)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)

	err := handler.StartRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRidesHandler_CompleteRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New()
	driverUUID := uuid.New()
	completed := &models.Ride{
		RideID:   rideID,
		DriverID: &driverUUID,
		Status:   models.RideStatusCompleted,
		FareUSD:  12.25,
	}
	mockRideUC.EXPECT().
		CompleteRide(gomock.Any(), rideID.String(), driverUUID.String()).
		Return(completed, nil)

	c, recorder := newRideContext(t, http.MethodPost, "", driverUUID.String(), constants.RoleDriver)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := handler.CompleteRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data models.Ride `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 12.25, resp.Data.FareUSD)
}

func TestRidesHandler_CancelRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	rideID := uuid.New().String()
	userID := uuid.New().String()
	mockRideUC.EXPECT().
		CancelRide(gomock.Any(), rideID, userID, constants.RoleUser).
		Return(&models.Ride{Status: models.RideStatusCancelled}, nil)

	c, recorder := newRideContext(t, http.MethodPost, "", userID, constants.RoleUser)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID)

	err := handler.CancelRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRidesHandler_MissingRideID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))
	c, recorder := newRideContext(t, http.MethodPost, "", uuid.New().String(), constants.RoleDriver)

	err := handler.AcceptRide(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
