package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/yl-doc/gearadvisor/domain"
)

// Chat runs one conversation turn and streams the resulting events.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// A fresh session id must reach the caller so later turns can reference
	// the same session; it travels in the header and in every event.
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Session-Id", req.SessionID)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "streaming not supported"})
	}

	c.Response().WriteHeader(http.StatusOK)

	emitter := NewSSEEmitter(c.Response().Writer, flusher)
	if err := h.svc.Respond(ctx, req, emitter); err != nil {
		// The stream is already open; the pipeline has reported what it could
		// to the caller as events.
		log.WithField("session_id", req.SessionID).WithError(err).Error("pipeline failed")
	}

	return nil
}
