package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	"sattrack/internal/utils"
	"sattrack/services/satellites"
)

// SatelliteHandler handles HTTP requests for satellite admin operations
type SatelliteHandler struct {
	satelliteUC satellites.SatelliteUC
}

// NewSatelliteHandler creates a new satellite handler
func NewSatelliteHandler(satelliteUC satellites.SatelliteUC) *SatelliteHandler {
	return &SatelliteHandler{
		satelliteUC: satelliteUC,
	}
}

// ListSatellites handles satellite listing requests
func (h *SatelliteHandler) ListSatellites(c echo.Context) error {
	summaries, err := h.satelliteUC.ListSatellites(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list satellites", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list satellites")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Satellites retrieved successfully", summaries)
}

// CreateSatellite handles satellite creation requests
func (h *SatelliteHandler) CreateSatellite(c echo.Context) error {
	var req models.CreateSatelliteRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for satellite creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	satellite, err := h.satelliteUC.CreateSatellite(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSatelliteRequest):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrDuplicateNoradID):
			return utils.ConflictResponse(c, err.Error())
		default:
			logger.Error("Failed to create satellite", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create satellite")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Satellite created successfully", satellite)
}

// UpdateSatellite handles partial satellite updates
func (h *SatelliteHandler) UpdateSatellite(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid satellite ID")
	}

	var req models.UpdateSatelliteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.satelliteUC.UpdateSatellite(c.Request().Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, models.ErrNoFieldsToUpdate):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrSatelliteNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, models.ErrDuplicateNoradID):
			return utils.ConflictResponse(c, err.Error())
		default:
			logger.Error("Failed to update satellite",
				logger.Int64("satellite_id", id),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update satellite")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Satellite updated successfully", nil)
}

// DeleteSatellite handles satellite deletion requests
func (h *SatelliteHandler) DeleteSatellite(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid satellite ID")
	}

	if err := h.satelliteUC.DeleteSatellite(c.Request().Context(), id); err != nil {
		if errors.Is(err, models.ErrSatelliteNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to delete satellite",
			logger.Int64("satellite_id", id),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete satellite")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Satellite deleted successfully", nil)
}
