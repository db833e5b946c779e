package handler

import (
	"github.com/labstack/echo/v4"

	"sattrack/services/satellites/handler/http"
)

// Handler coordinates the HTTP handlers for the satellites service
type Handler struct {
	satelliteHandler *http.SatelliteHandler
}

// NewHandler creates and initializes the satellites handler
func NewHandler(satelliteHandler *http.SatelliteHandler) *Handler {
	return &Handler{
		satelliteHandler: satelliteHandler,
	}
}

// RegisterRoutes registers the satellite admin routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/satellites")
	group.GET("", h.satelliteHandler.ListSatellites)
	group.POST("", h.satelliteHandler.CreateSatellite)
	group.PUT("/:id", h.satelliteHandler.UpdateSatellite)
	group.DELETE("/:id", h.satelliteHandler.DeleteSatellite)
}
