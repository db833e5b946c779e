package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"sattrack/internal/pkg/models"
	"sattrack/services/positions/mocks"
)

func TestListPositions_HTTP(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockSetup    func(mockUC *mocks.MockPositionUC)
		expectedCode int
	}{
		{
			name:  "Success By Satellite ID",
			query: "satellite_id=3&limit=10",
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().
					ListPositions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, filter *models.ListPositionsFilter) ([]models.Position, error) {
						assert.NotNil(t, filter.SatelliteID)
						assert.Equal(t, int64(3), *filter.SatelliteID)
						assert.Equal(t, 10, filter.Limit)
						return []models.Position{{ID: 1, SatelliteID: 3}}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Junk Satellite ID",
			query:        "satellite_id=abc",
			mockSetup:    func(mockUC *mocks.MockPositionUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Junk NORAD ID",
			query:        "norad_id=abc",
			mockSetup:    func(mockUC *mocks.MockPositionUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Junk Limit",
			query:        "satellite_id=3&limit=abc",
			mockSetup:    func(mockUC *mocks.MockPositionUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Missing Selector",
			query: "",
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().
					ListPositions(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrMissingSelector)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPositionUC(ctrl)
			handler := NewPositionHandler(mockUC)
			tc.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/positions?"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.ListPositions(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestCreatePosition_HTTP(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockSetup    func(mockUC *mocks.MockPositionUC)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"satellite_id": 3, "latitude": 51.0, "longitude": -0.1}`,
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().
					CreatePosition(gomock.Any(), gomock.Any()).
					Return(&models.Position{ID: 9, SatelliteID: 3, Latitude: 51.0, Longitude: -0.1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid Payload",
			body:         `{invalid_json}`,
			mockSetup:    func(mockUC *mocks.MockPositionUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing Fields",
			body: `{"satellite_id": 3}`,
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().
					CreatePosition(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrInvalidPositionRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Satellite Not Found",
			body: `{"satellite_id": 99, "latitude": 51.0, "longitude": -0.1}`,
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().
					CreatePosition(gomock.Any(), gomock.Any()).
					Return(nil, models.ErrSatelliteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPositionUC(ctrl)
			handler := NewPositionHandler(mockUC)
			tc.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/positions", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.CreatePosition(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestUpdatePosition_HTTP(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(mockUC *mocks.MockPositionUC)
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			body: `{"latitude": 52.5}`,
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().UpdatePosition(gomock.Any(), int64(1), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid ID",
			id:           "abc",
			body:         `{"latitude": 52.5}`,
			mockSetup:    func(mockUC *mocks.MockPositionUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not Found",
			id:   "99",
			body: `{"latitude": 52.5}`,
			mockSetup: func(mockUC *mocks.MockPositionUC) {
				mockUC.EXPECT().UpdatePosition(gomock.Any(), int64(99), gomock.Any()).
					Return(models.ErrPositionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPositionUC(ctrl)
			handler := NewPositionHandler(mockUC)
			tc.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/api/positions/"+tc.id, strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			err := handler.UpdatePosition(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestDeletePosition_HTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	mockUC.EXPECT().DeletePosition(gomock.Any(), int64(99)).Return(models.ErrPositionNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/positions/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.DeletePosition(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistory_HTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	rows := []models.Position{
		{ID: 1, Timestamp: 1700000000, Latitude: 51.0, Longitude: -0.1},
		{ID: 2, Timestamp: 1700000060, Latitude: 51.1, Longitude: -0.2},
	}
	mockUC.EXPECT().History(gomock.Any(), 200).Return(rows, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=200", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.History(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1700000000), first["timestamp"])
}

func TestHistory_HTTPJunkLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	// Junk limit is tolerated and passed through as zero
	mockUC.EXPECT().History(gomock.Any(), 0).Return([]models.Position{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.History(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus_HTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	first := int64(1700000000)
	last := int64(1700000090)
	mockUC.EXPECT().Stats(gomock.Any()).
		Return(&models.TrackStats{Points: 10, FirstTimestamp: &first, LastTimestamp: &last}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Status(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["points"])
	assert.Equal(t, float64(1700000000), data["first_timestamp"])
}

func TestExportCSV_HTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	csvData := []byte("timestamp,latitude,longitude,altitude_km,velocity_kmh\n1700000000,51,-0.1,,\n")
	mockUC.EXPECT().ExportHistoryCSV(gomock.Any(), 0).Return(csvData, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/history.csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ExportCSV(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=iss_history.csv", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, string(csvData), rec.Body.String())
}

func TestExportCSV_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPositionUC(ctrl)
	handler := NewPositionHandler(mockUC)

	mockUC.EXPECT().ExportHistoryCSV(gomock.Any(), 0).Return(nil, errors.New("database error"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/history.csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ExportCSV(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
