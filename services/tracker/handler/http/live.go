package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sattrack/internal/pkg/logger"
	"sattrack/internal/utils"
	"sattrack/services/tracker"
)

// LiveHandler handles HTTP requests for the live position endpoint
type LiveHandler struct {
	trackerUC tracker.TrackerUC
}

// NewLiveHandler creates a new live position handler
func NewLiveHandler(trackerUC tracker.TrackerUC) *LiveHandler {
	return &LiveHandler{
		trackerUC: trackerUC,
	}
}

// CurrentPosition returns the tracked satellite's current position,
// live when the feed answers and cached otherwise
func (h *LiveHandler) CurrentPosition(c echo.Context) error {
	position, err := h.trackerUC.CurrentPosition(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get current position", logger.Err(err))
		return utils.BadGatewayResponse(c, "Failed to fetch satellite position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position retrieved successfully", position)
}
