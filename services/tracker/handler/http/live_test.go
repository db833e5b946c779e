package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"sattrack/internal/pkg/models"
	"sattrack/services/tracker/mocks"
)

func TestCurrentPosition_HTTPSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackerUC(ctrl)
	handler := NewLiveHandler(mockUC)

	altitude := 420.5
	mockUC.EXPECT().
		CurrentPosition(gomock.Any()).
		Return(&models.LivePosition{
			Source:     models.SourceLive,
			Timestamp:  1700000000,
			Latitude:   51.0,
			Longitude:  -0.1,
			AltitudeKm: &altitude,
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/iss", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CurrentPosition(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "live", data["source"])
	assert.Equal(t, float64(1700000000), data["timestamp"])
	assert.Equal(t, float64(420.5), data["altitude_km"])
}

func TestCurrentPosition_HTTPFeedUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackerUC(ctrl)
	handler := NewLiveHandler(mockUC)

	mockUC.EXPECT().
		CurrentPosition(gomock.Any()).
		Return(nil, errors.New("feed unavailable"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/iss", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CurrentPosition(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Failed to fetch satellite position", response["error"])
}
