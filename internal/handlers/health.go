package handlers

import (
	"net/http"

	"github.com/gita-explorer-api/internal/corpus"
	"github.com/labstack/echo/v4"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	corpus *corpus.Corpus
	source string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(c *corpus.Corpus, source string) *HealthHandler {
	return &HealthHandler{corpus: c, source: source}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// CorpusHealthResponse is the response for corpus health check
type CorpusHealthResponse struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Chapters int    `json:"chapters"`
	Verses   int    `json:"verses"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// CorpusHealth handles GET /health/corpus
func (h *HealthHandler) CorpusHealth(c echo.Context) error {
	if h.corpus == nil || h.corpus.VerseCount() == 0 {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "empty",
			"error":  "Corpus has no verses",
		})
	}

	return c.JSON(http.StatusOK, CorpusHealthResponse{
		Status:   "loaded",
		Source:   h.source,
		Chapters: h.corpus.ChapterCount(),
		Verses:   h.corpus.VerseCount(),
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/health/corpus", h.CorpusHealth)
}
