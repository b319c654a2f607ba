// Package api provides HTTP handlers for the advisor server.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/service"
	"github.com/yl-doc/gearadvisor/store"
)

// Handler handles HTTP requests.
type Handler struct {
	svc   *service.Service
	store store.Store
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, st store.Store) *Handler {
	return &Handler{
		svc:   svc,
		store: st,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/chat", h.Chat)

	e.GET("/v1/sessions/:session_id/history", h.GetSessionHistory)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// GetSessionHistory returns the turn log for a session.
// GET /v1/sessions/:session_id/history
func (h *Handler) GetSessionHistory(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	turns, err := h.store.History(ctx, sessionID)
	if err != nil {
		log.WithField("session_id", sessionID).WithError(err).Error("failed to get history")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get history"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"turns":      turns,
	})
}
