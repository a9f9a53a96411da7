package handler

import (
	"net/http"

	"github.com/osse101/MultiplierShop/internal/shop"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	shopService shop.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(shopService shop.Service) *AdminCacheHandler {
	return &AdminCacheHandler{shopService: shopService}
}

// HandleGetCacheStats returns max-affordable cache statistics
// @Summary Get search cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} shop.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.shopService.CacheStats())
}
