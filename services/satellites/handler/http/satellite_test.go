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
	"sattrack/services/satellites/mocks"
)

func TestListSatellites_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSatelliteUC(ctrl)
	handler := NewSatelliteHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/satellites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	summaries := []models.SatelliteSummary{
		{Satellite: models.Satellite{ID: 1, NoradID: 25544, Name: "ISS"}, PositionCount: 42},
	}
	mockUC.EXPECT().ListSatellites(gomock.Any()).Return(summaries, nil)

	err := handler.ListSatellites(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(25544), first["norad_id"])
	assert.Equal(t, float64(42), first["position_count"])
}

func TestCreateSatellite_HTTPSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSatelliteUC(ctrl)
	handler := NewSatelliteHandler(mockUC)

	e := echo.New()
	requestBody := `{"norad_id": 25544, "name": "ISS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/satellites", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		CreateSatellite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.CreateSatelliteRequest) (*models.Satellite, error) {
			assert.NotNil(t, req.NoradID)
			assert.Equal(t, 25544, *req.NoradID)
			assert.Equal(t, "ISS", req.Name)
			return &models.Satellite{ID: 1, NoradID: 25544, Name: "ISS"}, nil
		})

	err := handler.CreateSatellite(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(25544), data["norad_id"])
	assert.Equal(t, "ISS", data["name"])
}

func TestCreateSatellite_HTTPInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSatelliteUC(ctrl)
	handler := NewSatelliteHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/satellites", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateSatellite(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["error"])
}

func TestCreateSatellite_HTTPValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSatelliteUC(ctrl)
	handler := NewSatelliteHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/satellites", strings.NewReader(`{"name": ""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		CreateSatellite(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidSatelliteRequest)

	err := handler.CreateSatellite(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSatellite_HTTPConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSatelliteUC(ctrl)
	handler := NewSatelliteHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/satellites", strings.NewReader(`{"norad_id": 25544, "name": "ISS"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		CreateSatellite(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrDuplicateNoradID)

	err := handler.CreateSatellite(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateSatellite_HTTP(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(mockUC *mocks.MockSatelliteUC)
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			body: `{"name": "Zarya"}`,
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().UpdateSatellite(gomock.Any(), int64(1), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid ID",
			id:           "abc",
			body:         `{"name": "Zarya"}`,
			mockSetup:    func(mockUC *mocks.MockSatelliteUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not Found",
			id:   "99",
			body: `{"name": "Zarya"}`,
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().UpdateSatellite(gomock.Any(), int64(99), gomock.Any()).
					Return(models.ErrSatelliteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "No Fields",
			id:   "1",
			body: `{}`,
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().UpdateSatellite(gomock.Any(), int64(1), gomock.Any()).
					Return(models.ErrNoFieldsToUpdate)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Conflict",
			id:   "1",
			body: `{"norad_id": 25544}`,
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().UpdateSatellite(gomock.Any(), int64(1), gomock.Any()).
					Return(models.ErrDuplicateNoradID)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockSatelliteUC(ctrl)
			handler := NewSatelliteHandler(mockUC)
			tc.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/api/satellites/"+tc.id, strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			err := handler.UpdateSatellite(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestDeleteSatellite_HTTP(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockSetup    func(mockUC *mocks.MockSatelliteUC)
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().DeleteSatellite(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not Found",
			id:   "99",
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().DeleteSatellite(gomock.Any(), int64(99)).
					Return(models.ErrSatelliteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal Error",
			id:   "1",
			mockSetup: func(mockUC *mocks.MockSatelliteUC) {
				mockUC.EXPECT().DeleteSatellite(gomock.Any(), int64(1)).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockSatelliteUC(ctrl)
			handler := NewSatelliteHandler(mockUC)
			tc.mockSetup(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/satellites/"+tc.id, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			err := handler.DeleteSatellite(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}
