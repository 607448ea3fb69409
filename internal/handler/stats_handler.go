package handlers

import (
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"ngoportal/internal/repository"
)

const statsCacheKey = "stats"

// StatsHandler caches the aggregate for a minute. The counts are cheap
// but the admin dashboard polls them.
type StatsHandler struct {
	stats repository.StatsRepository
	cache *cache.Cache
}

func NewStatsHandler(stats repository.StatsRepository) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		cache: cache.New(time.Minute, 5*time.Minute),
	}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(statsCacheKey); found {
		writeJSON(w, cached, http.StatusOK)
		return
	}

	stats, err := h.stats.Counts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	writeJSON(w, stats, http.StatusOK)
}
