package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	"sattrack/internal/utils"
	"sattrack/services/positions"
)

// PositionHandler handles HTTP requests for position history and admin
// operations
type PositionHandler struct {
	positionUC positions.PositionUC
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionUC positions.PositionUC) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
	}
}

// ListPositions handles position listing requests, selected by
// satellite_id or norad_id
func (h *PositionHandler) ListPositions(c echo.Context) error {
	filter := &models.ListPositionsFilter{}

	if raw := c.QueryParam("satellite_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "satellite_id must be integer")
		}
		filter.SatelliteID = &id
	}
	if raw := c.QueryParam("norad_id"); raw != "" {
		norad, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "norad_id must be integer")
		}
		filter.NoradID = &norad
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be integer")
		}
		filter.Limit = limit
	}

	rows, err := h.positionUC.ListPositions(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, models.ErrMissingSelector) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list positions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list positions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Positions retrieved successfully", rows)
}

// CreatePosition handles manual position creation requests
func (h *PositionHandler) CreatePosition(c echo.Context) error {
	var req models.CreatePositionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for position creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	position, err := h.positionUC.CreatePosition(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPositionRequest):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrSatelliteNotFound):
			return utils.NotFoundResponse(c, err.Error())
		default:
			logger.Error("Failed to create position", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create position")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Position created successfully", position)
}

// UpdatePosition handles partial position updates
func (h *PositionHandler) UpdatePosition(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid position ID")
	}

	var req models.UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.positionUC.UpdatePosition(c.Request().Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, models.ErrNoFieldsToUpdate):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrPositionNotFound):
			return utils.NotFoundResponse(c, err.Error())
		default:
			logger.Error("Failed to update position",
				logger.Int64("position_id", id),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to update position")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position updated successfully", nil)
}

// DeletePosition handles position deletion requests
func (h *PositionHandler) DeletePosition(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid position ID")
	}

	if err := h.positionUC.DeletePosition(c.Request().Context(), id); err != nil {
		if errors.Is(err, models.ErrPositionNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to delete position",
			logger.Int64("position_id", id),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position deleted successfully", nil)
}

// History returns the tracked satellite's history, oldest first
func (h *PositionHandler) History(c echo.Context) error {
	limit := parseLimit(c)

	rows, err := h.positionUC.History(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to get history", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "History retrieved successfully", rows)
}

// Status summarizes the tracked satellite's stored history
func (h *PositionHandler) Status(c echo.Context) error {
	stats, err := h.positionUC.Stats(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get track stats", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status retrieved successfully", stats)
}

// ExportCSV streams the tracked satellite's history as a CSV attachment
func (h *PositionHandler) ExportCSV(c echo.Context) error {
	limit := parseLimit(c)

	data, err := h.positionUC.ExportHistoryCSV(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to export history CSV", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to export history")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", "iss_history.csv"))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// parseLimit reads the limit query parameter, tolerating absence and junk;
// the usecase clamps the final value
func parseLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
