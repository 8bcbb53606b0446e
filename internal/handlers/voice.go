package handlers

import (
	"context"
	"net/http"

	"github.com/gita-explorer-api/internal/models"
	"github.com/gita-explorer-api/internal/voice"
	"github.com/labstack/echo/v4"
)

// VoiceCapturer captures one spoken query
type VoiceCapturer interface {
	Capture(ctx context.Context) voice.Result
}

// VoiceHandler handles voice capture endpoints
type VoiceHandler struct {
	capturer VoiceCapturer
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(capturer VoiceCapturer) *VoiceHandler {
	return &VoiceHandler{capturer: capturer}
}

// Capture handles GET /voice. A failed capture is reported as an empty query.
func (h *VoiceHandler) Capture(c echo.Context) error {
	res := h.capturer.Capture(c.Request().Context())
	if !res.OK() {
		c.Logger().Warnf("Voice capture failed: %v", res.Err)
		return c.JSON(http.StatusOK, models.VoiceResponse{Query: ""})
	}
	return c.JSON(http.StatusOK, models.VoiceResponse{Query: res.Query})
}

// RegisterRoutes registers voice routes
func (h *VoiceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/voice", h.Capture)
}
