package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"photo-organiser/repository"
)

// NewRouter assembles the read-mostly HTTP API over the photo store
func NewRouter(db *gorm.DB) http.Handler {
	photoRepo := repository.NewPhotoRepository(db)
	faceRepo := repository.NewFaceRepository(db)
	personRepo := repository.NewPersonRepository(db)

	photoHandler := &PhotoHandler{DB: db, PhotoRepo: photoRepo, FaceRepo: faceRepo}
	personHandler := &PersonHandler{PersonRepo: personRepo}
	statsHandler := &StatsHandler{PhotoRepo: photoRepo}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", statsHandler.GetStats)

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", photoHandler.ListPhotos)
			r.Route("/{photo_id}", func(r chi.Router) {
				r.Get("/", photoHandler.GetPhoto)
				r.Get("/faces", photoHandler.ListPhotoFaces)
			})
		})

		r.Route("/people", func(r chi.Router) {
			r.Post("/", personHandler.CreatePerson)
			r.Get("/", personHandler.ListPeople)
			r.Route("/{person_id}", func(r chi.Router) {
				r.Get("/", personHandler.GetPerson)
				r.Delete("/", personHandler.DeletePerson)
			})
		})
	})

	return r
}
