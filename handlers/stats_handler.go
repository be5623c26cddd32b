package handlers

import (
	"log"
	"net/http"

	"photo-organiser/repository"
)

// StatsHandler serves library-wide processing statistics
type StatsHandler struct {
	PhotoRepo repository.PhotoRepositoryInterface
}

// GetStats handles GET /api/stats
func (sh *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := sh.PhotoRepo.Stats()
	if err != nil {
		log.Printf("Error getting photo stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve statistics"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
