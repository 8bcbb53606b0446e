package handlers

import (
	"net/http"
	"strconv"

	"github.com/gita-explorer-api/internal/services"
	"github.com/labstack/echo/v4"
)

// SearchHandler handles verse lookup, search and theme endpoints
type SearchHandler struct {
	verseSearch *services.VerseSearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(verseSearch *services.VerseSearchService) *SearchHandler {
	return &SearchHandler{
		verseSearch: verseSearch,
	}
}

// Search handles GET /search?q= - reference lookup or keyword search
func (h *SearchHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, h.verseSearch.Query(c.QueryParam("q")))
}

// Verse handles GET /verses/:chapter/:verse - exact reference lookup
func (h *SearchHandler) Verse(c echo.Context) error {
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Chapter must be a number")
	}

	result, ok := h.verseSearch.Verse(chapter, c.Param("verse"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Verse not found")
	}
	return c.JSON(http.StatusOK, result)
}

// Themes handles GET /themes?exclude= - related theme recommendations
func (h *SearchHandler) Themes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.verseSearch.RelatedThemes(c.QueryParam("exclude")))
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/verses/:chapter/:verse", h.Verse)
	g.GET("/themes", h.Themes)
}
