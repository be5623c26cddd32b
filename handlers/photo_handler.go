package handlers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/facette/natsort"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"photo-organiser/database"
	"photo-organiser/repository"
)

// PhotoHandler serves read-only photo queries over the API
type PhotoHandler struct {
	DB        *gorm.DB
	PhotoRepo repository.PhotoRepositoryInterface
	FaceRepo  repository.FaceRepositoryInterface
}

// parseBoolParam reads an optional tri-state query parameter; nil means unset
func parseBoolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &val
}

// ListPhotos handles GET /api/photos with optional filters assembled into one
// dynamic query. sort=natural re-orders the page by natural file name order.
func (ph *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := ph.DB.DB()
	if err != nil {
		log.Printf("Error getting sql.DB for photo search: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to query photos"})
		return
	}

	filter := database.PhotoFilter{
		Status:       r.URL.Query().Get("status"),
		ContentType:  r.URL.Query().Get("content_type"),
		HasFaces:     parseBoolParam(r, "has_faces"),
		HasText:      parseBoolParam(r, "has_text"),
		IsScreenshot: parseBoolParam(r, "is_screenshot"),
	}
	if limit, err := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.ParseUint(r.URL.Query().Get("offset"), 10, 64); err == nil {
		filter.Offset = offset
	}

	photos, err := database.SearchPhotos(sqlDB, filter)
	if err != nil {
		log.Printf("Error searching photos: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to query photos"})
		return
	}

	if r.URL.Query().Get("sort") == "natural" {
		sort.Slice(photos, func(i, j int) bool {
			return natsort.Compare(photos[i].FilePath, photos[j].FilePath)
		})
	}

	writeJSON(w, http.StatusOK, photos)
}

// GetPhoto handles GET /api/photos/{photo_id}
func (ph *PhotoHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "photo_id")
	photoID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid photo ID format"})
		return
	}

	photo, err := ph.PhotoRepo.GetByID(uint(photoID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Photo not found"})
		} else {
			log.Printf("Error getting photo %d: %v", photoID, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve photo"})
		}
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

// ListPhotoFaces handles GET /api/photos/{photo_id}/faces
func (ph *PhotoHandler) ListPhotoFaces(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "photo_id")
	photoID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid photo ID format"})
		return
	}

	if _, err := ph.PhotoRepo.GetByID(uint(photoID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Photo not found"})
			return
		}
		log.Printf("Error getting photo %d: %v", photoID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve photo"})
		return
	}

	faces, err := ph.FaceRepo.ListByPhotoID(uint(photoID))
	if err != nil {
		log.Printf("Error listing faces for photo %d: %v", photoID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve faces"})
		return
	}

	writeJSON(w, http.StatusOK, faces)
}
