package handler

import (
	"github.com/labstack/echo/v4"

	"sattrack/services/tracker/handler/http"
)

// Handler coordinates the HTTP handlers for the tracker service
type Handler struct {
	liveHandler *http.LiveHandler
}

// NewHandler creates and initializes the tracker handler
func NewHandler(liveHandler *http.LiveHandler) *Handler {
	return &Handler{
		liveHandler: liveHandler,
	}
}

// RegisterRoutes registers the live position route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/iss", h.liveHandler.CurrentPosition)
}
