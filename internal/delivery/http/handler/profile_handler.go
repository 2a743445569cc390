package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ableworks/ableworks-backend/internal/catalog"
	"github.com/ableworks/ableworks-backend/internal/codec"
	"github.com/ableworks/ableworks-backend/internal/domain"
)

// ProfileHandler serves the codec surface the form and results pages share,
// plus the fixed option catalogs the form renders.
type ProfileHandler struct {
	catalog *catalog.Catalog
}

func NewProfileHandler(cat *catalog.Catalog) *ProfileHandler {
	return &ProfileHandler{catalog: cat}
}

// EncodeProfile handles POST /profile/encode
func (h *ProfileHandler) EncodeProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	token, err := codec.Encode(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to encode profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DecodeProfile handles GET /profile/decode?token=
func (h *ProfileHandler) DecodeProfile(c *gin.Context) {
	profile := codec.Decode(c.Query("token"))
	if profile == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "we couldn't read your profile, please fill out the form again",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCatalog handles GET /catalog
func (h *ProfileHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"genders":           h.catalog.Genders(),
		"races":             h.catalog.Races(),
		"interests":         h.catalog.Interests(),
		"disabilities":      h.catalog.Disabilities(),
		"medicalConditions": h.catalog.MedicalConditions(),
	})
}
