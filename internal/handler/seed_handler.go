package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papi/internal/datastore"
	"papi/internal/seed"
)

// SeedHandler resets collections to their bundled fixtures.
type SeedHandler struct {
	ds *datastore.DataStore
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(ds *datastore.DataStore) *SeedHandler {
	return &SeedHandler{ds: ds}
}

// SeedResponse represents the seed result.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Reset godoc
// @Summary Overwrite all collections with the bundled seed data
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Reset(c echo.Context) error {
	count := h.ds.Seed(c.Request().Context(), seed.Collections(), true)
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "collections reset to seed data",
		Count:   count,
	})
}
