package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agricoop-backend/internal/service"
)

// SearchHandler handles the global search endpoint
type SearchHandler struct {
	searchService service.SearchServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService service.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /search
// @Summary Global search
// @Description Searches people, farms, businesses and announcements by a single query string
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} service.GroupedSearchResults "Grouped search results"
// @Failure 400 {object} ErrorResponse "Missing query"
// @Security BearerAuth
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
