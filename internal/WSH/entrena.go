package wsh

import (
	"net/http"

	etH "football-league/internal/entrenaHandlers"
	"football-league/internal/models"
	"football-league/internal/validation"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

func EntrenaRoutes(DB *gorm.DB) chi.Router {
	h := &etH.Handler{Handler: models.Handler{DB: DB}}
	r := chi.NewRouter()

	r.Post("/", createEntrena(h))
	r.Get("/", listEntrena(h))
	r.Get("/{entrenadorID}/{equipoID}/{temporadaID}", getEntrena(h))
	r.Put("/{entrenadorID}/{equipoID}/{temporadaID}", updateEntrena(h))
	r.Delete("/{entrenadorID}/{equipoID}/{temporadaID}", deleteEntrena(h))

	return r
}

func entrenaKey(r *http.Request) (entrenadorID, equipoID, temporadaID int64, err error) {
	if entrenadorID, err = pathID(r, "entrenadorID"); err != nil {
		return
	}
	if equipoID, err = pathID(r, "equipoID"); err != nil {
		return
	}
	temporadaID, err = pathID(r, "temporadaID")
	return
}

func createEntrena(h *etH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rel models.Entrena
		if err := validation.DecodeJSON(r.Body, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&rel); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.CreateEntrena(&rel); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, rel)
	}
}

func listEntrena(h *etH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rels, err := h.GetAllEntrena()
		if err != nil {
			handleError(w, err, "")
			return
		}
		if rels == nil {
			rels = []models.Entrena{}
		}
		writeJSON(w, http.StatusOK, rels)
	}
}

func getEntrena(h *etH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, equipoID, temporadaID, err := entrenaKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		rel, err := h.GetEntrena(entrenadorID, equipoID, temporadaID)
		if err != nil {
			handleError(w, err, "Entrena no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, rel)
	}
}

func updateEntrena(h *etH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, equipoID, temporadaID, err := entrenaKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		var rel models.Entrena
		if err := validation.DecodeJSON(r.Body, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		rel.EntrenadorID, rel.EquipoID, rel.TemporadaID = entrenadorID, equipoID, temporadaID
		if err := validation.Struct(&rel); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.UpdateEntrena(entrenadorID, equipoID, temporadaID, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, rel)
	}
}

func deleteEntrena(h *etH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entrenadorID, equipoID, temporadaID, err := entrenaKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		deleted, err := h.DeleteEntrena(entrenadorID, equipoID, temporadaID)
		if err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
