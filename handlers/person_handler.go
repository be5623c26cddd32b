package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"photo-organiser/models"
	"photo-organiser/repository"
)

// PersonHandler serves person management over the API
type PersonHandler struct {
	PersonRepo repository.PersonRepositoryInterface
}

func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		DisplayName *string `json:"display_name"`
		Description *string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required field: name"})
		return
	}

	person := &models.Person{
		Name:        strings.TrimSpace(req.Name),
		DisplayName: req.DisplayName,
		Description: req.Description,
	}
	if err := ph.PersonRepo.Create(person); err != nil {
		log.Printf("Error creating person '%s': %v", req.Name, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create person"})
		return
	}

	writeJSON(w, http.StatusCreated, person)
}

func (ph *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := ph.PersonRepo.ListAll()
	if err != nil {
		log.Printf("Error listing people: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve people"})
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "person_id")
	personID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid person ID format"})
		return
	}

	person, err := ph.PersonRepo.GetByID(uint(personID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Person not found"})
		} else {
			log.Printf("Error getting person %d: %v", personID, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve person"})
		}
		return
	}

	photoCount, err := ph.PersonRepo.PhotoCount(person.ID)
	if err != nil {
		log.Printf("Error counting photos for person %d: %v", personID, err)
		photoCount = 0
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"person":      person,
		"photo_count": photoCount,
	})
}

func (ph *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "person_id")
	personID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid person ID format"})
		return
	}

	if err := ph.PersonRepo.Delete(uint(personID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Person not found"})
		} else {
			log.Printf("Error deleting person %d: %v", personID, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete person"})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
