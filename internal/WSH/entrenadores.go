package wsh

import (
	"net/http"

	enH "football-league/internal/entrenadorHandlers"
	"football-league/internal/models"
	"football-league/internal/validation"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

func EntrenadoresRoutes(DB *gorm.DB) chi.Router {
	h := &enH.Handler{Handler: models.Handler{DB: DB}}
	r := chi.NewRouter()

	r.Post("/", createEntrenador(h))
	r.Get("/", listEntrenadores(h))
	r.Get("/{entrenadorID}", getEntrenador(h))
	r.Put("/{entrenadorID}", updateEntrenador(h))
	r.Delete("/{entrenadorID}", deleteEntrenador(h))

	return r
}

func createEntrenador(h *enH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entrenador models.Entrenador
		if err := validation.DecodeJSON(r.Body, &entrenador); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&entrenador); err != nil {
			handleError(w, err, "")
			return
		}

		entrenador.EntrenadorID = 0
		if err := h.CreateEntrenador(&entrenador); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, entrenador)
	}
}

func listEntrenadores(h *enH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadores, err := h.GetAllEntrenadores()
		if err != nil {
			handleError(w, err, "")
			return
		}
		if entrenadores == nil {
			entrenadores = []models.Entrenador{}
		}
		writeJSON(w, http.StatusOK, entrenadores)
	}
}

func getEntrenador(h *enH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, err := pathID(r, "entrenadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		entrenador, err := h.GetEntrenadorByID(entrenadorID)
		if err != nil {
			handleError(w, err, "Entrenador no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, entrenador)
	}
}

func updateEntrenador(h *enH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, err := pathID(r, "entrenadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		var entrenador models.Entrenador
		if err := validation.DecodeJSON(r.Body, &entrenador); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&entrenador); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.UpdateEntrenador(entrenadorID, &entrenador); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, entrenador)
	}
}

func deleteEntrenador(h *enH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, err := pathID(r, "entrenadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		deleted, err := h.DeleteEntrenador(entrenadorID)
		if err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
