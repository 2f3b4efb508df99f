package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/middleware"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/services/presence/mocks"
)

func newPresenceContext(t *testing.T, method, target, body, subjectID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set(middleware.ContextKeySubjectID, subjectID)
	c.Set(middleware.ContextKeyRole, role)
	return c, recorder
}

func TestPresenceHandler_NearbyDrivers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	drivers := []*models.NearbyDriver{
		{DriverID: uuid.New().String(), DistanceMiles: 0.4},
		{DriverID: uuid.New().String(), DistanceMiles: 1.2},
	}
	mockPresenceUC.EXPECT().
		NearbyDrivers(gomock.Any(),
			models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}, 2.5, 5).
		Return(drivers, nil)

	q := url.Values{}
	q.Set("lat", "40.7128")
	q.Set("lng", "-74.0060")
	q.Set("radius_miles", "2.5")
	q.Set("max", "5")
	c, recorder := newPresenceContext(t, http.MethodGet, "/?"+q.Encode(), "",
		uuid.New().String(), constants.RoleUser)

	err := handler.NearbyDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data []*models.NearbyDriver `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, drivers[0].DriverID, resp.Data[0].DriverID)
}

func TestPresenceHandler_NearbyDrivers_DefaultsWhenOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	mockPresenceUC.EXPECT().
		NearbyDrivers(gomock.Any(), gomock.Any(), 0.0, 0).
		Return([]*models.NearbyDriver{}, nil)

	c, recorder := newPresenceContext(t, http.MethodGet, "/?lat=40.7&lng=-74.0", "",
		uuid.New().String(), constants.RoleUser)

	err := handler.NearbyDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPresenceHandler_NearbyDrivers_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPresenceHandler(mocks.NewMockPresenceUC(ctrl))
	c, recorder := newPresenceContext(t, http.MethodGet, "/?lng=-74.0", "",
		uuid.New().String(), constants.RoleUser)

	err := handler.NearbyDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPresenceHandler_NearbyDrivers_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	mockPresenceUC.EXPECT().
		NearbyDrivers(gomock.Any(), gomock.Any(), 0.0, 0).
		Return(nil, apperrors.ErrInvalidCoordinates)

	c, recorder := newPresenceContext(t, http.MethodGet, "/?lat=95.0&lng=-74.0", "",
		uuid.New().String(), constants.RoleUser)

	err := handler.NearbyDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPresenceHandler_GetPresence_OwnRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	driverID := uuid.New().String()
	mockPresenceUC.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverPresence{DriverID: driverID, IsAvailable: true}, nil)

	c, recorder := newPresenceContext(t, http.MethodGet, "/", "", driverID, constants.RoleDriver)
	c.SetParamNames("driverID")
	c.SetParamValues(driverID)

	err := handler.GetPresence(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPresenceHandler_GetPresence_OtherDriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPresenceHandler(mocks.NewMockPresenceUC(ctrl))

	c, recorder := newPresenceContext(t, http.MethodGet, "/", "",
		uuid.New().String(), constants.RoleDriver)
	c.SetParamNames("driverID")
	c.SetParamValues(uuid.New().String())

	err := handler.GetPresence(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestPresenceHandler_GetPresence_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	driverID := uuid.New().String()
	mockPresenceUC.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(nil, apperrors.ErrNotFound)

	c, recorder := newPresenceContext(t, http.MethodGet, "/", "",
		uuid.New().String(), constants.RoleUser)
	c.SetParamNames("driverID")
	c.SetParamValues(driverID)

	err := handler.GetPresence(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPresenceHandler_SetAvailability_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPresenceUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockPresenceUC)

	driverID := uuid.New().String()
	mockPresenceUC.EXPECT().
		SetAvailability(gomock.Any(), driverID, false).
		Return(nil)

	c, recorder := newPresenceContext(t, http.MethodPut, "/", `{"is_available":false}`,
		driverID, constants.RoleDriver)

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPresenceHandler_SetAvailability_RiderForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPresenceHandler(mocks.NewMockPresenceUC(ctrl))
	c, recorder := newPresenceContext(t, http.MethodPut, "/", `{"is_available":true}`,
		uuid.New().String(), constants.RoleUser)

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
