package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ableworks/ableworks-backend/internal/usecase/places"
)

// PlaceSearcher is the slice of the geocoding client this handler needs.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) ([]places.Place, error)
}

// PlacesHandler proxies the location autocomplete. A failing geocoding
// service degrades to an empty suggestion list, never an error page.
type PlacesHandler struct {
	searcher PlaceSearcher
}

func NewPlacesHandler(searcher PlaceSearcher) *PlacesHandler {
	return &PlacesHandler{searcher: searcher}
}

// SearchPlaces handles GET /places/search?q=
func (h *PlacesHandler) SearchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "q is required",
		})
		return
	}

	results, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		slog.Warn("place search failed", "query", query, "error", err)
		results = []places.Place{}
	}

	c.JSON(http.StatusOK, gin.H{"places": results})
}
