package handler

import (
	"github.com/labstack/echo/v4"

	"sattrack/services/positions/handler/http"
)

// Handler coordinates the HTTP handlers for the positions service
type Handler struct {
	positionHandler *http.PositionHandler
}

// NewHandler creates and initializes the positions handler
func NewHandler(positionHandler *http.PositionHandler) *Handler {
	return &Handler{
		positionHandler: positionHandler,
	}
}

// RegisterRoutes registers the position history and admin routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/history", h.positionHandler.History)
	e.GET("/api/history.csv", h.positionHandler.ExportCSV)
	e.GET("/api/status", h.positionHandler.Status)

	group := e.Group("/api/positions")
	group.GET("", h.positionHandler.ListPositions)
	group.POST("", h.positionHandler.CreatePosition)
	group.PUT("/:id", h.positionHandler.UpdatePosition)
	group.DELETE("/:id", h.positionHandler.DeletePosition)
}
