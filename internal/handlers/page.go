package handlers

import (
	"net/http"

	"github.com/gita-explorer-api/internal/web"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the explorer web page
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home handles GET /
func (h *PageHandler) Home(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.IndexHTML)
}

// RegisterRoutes registers page routes
func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
}
