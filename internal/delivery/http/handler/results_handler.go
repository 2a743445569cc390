package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ableworks/ableworks-backend/internal/codec"
	"github.com/ableworks/ableworks-backend/internal/usecase/aggregate"
)

// ResultsHandler serves the whole results page in one call: decode the
// profile token, run the aggregation to completion, return the merged view.
type ResultsHandler struct {
	aggregator *aggregate.Aggregator
}

func NewResultsHandler(aggregator *aggregate.Aggregator) *ResultsHandler {
	return &ResultsHandler{aggregator: aggregator}
}

// GetResults handles GET /results?profile=<token>
func (h *ResultsHandler) GetResults(c *gin.Context) {
	profile := codec.Decode(c.Query("profile"))
	if profile == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "we couldn't read your profile, please fill out the form again",
		})
		return
	}

	session := h.aggregator.Run(c.Request.Context(), profile)
	session.Wait()

	c.JSON(http.StatusOK, session.Snapshot())
}
