package wsh

import (
	"net/http"

	jeH "football-league/internal/juegaEnHandlers"
	"football-league/internal/models"
	"football-league/internal/validation"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// Las rutas de juega_en direccionan por la clave compuesta completa:
// jugador, equipo y temporada.
func JuegaEnRoutes(DB *gorm.DB) chi.Router {
	h := &jeH.Handler{Handler: models.Handler{DB: DB}}
	r := chi.NewRouter()

	r.Post("/", createJuegaEn(h))
	r.Get("/", listJuegaEn(h))
	r.Get("/{jugadorID}/{equipoID}/{temporadaID}", getJuegaEn(h))
	r.Put("/{jugadorID}/{equipoID}/{temporadaID}", updateJuegaEn(h))
	r.Delete("/{jugadorID}/{equipoID}/{temporadaID}", deleteJuegaEn(h))

	return r
}

func juegaEnKey(r *http.Request) (jugadorID, equipoID, temporadaID int64, err error) {
	if jugadorID, err = pathID(r, "jugadorID"); err != nil {
		return
	}
	if equipoID, err = pathID(r, "equipoID"); err != nil {
		return
	}
	temporadaID, err = pathID(r, "temporadaID")
	return
}

func createJuegaEn(h *jeH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rel models.JuegaEn
		if err := validation.DecodeJSON(r.Body, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&rel); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.CreateJuegaEn(&rel); err != nil {
			handleError(w, err, "")
			return
		}
		// se devuelve la propia entrada, la clave la puso el cliente
		writeJSON(w, http.StatusCreated, rel)
	}
}

func listJuegaEn(h *jeH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rels, err := h.GetAllJuegaEn()
		if err != nil {
			handleError(w, err, "")
			return
		}
		if rels == nil {
			rels = []models.JuegaEn{}
		}
		writeJSON(w, http.StatusOK, rels)
	}
}

func getJuegaEn(h *jeH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, equipoID, temporadaID, err := juegaEnKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		rel, err := h.GetJuegaEn(jugadorID, equipoID, temporadaID)
		if err != nil {
			handleError(w, err, "JuegaEn no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, rel)
	}
}

func updateJuegaEn(h *jeH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, equipoID, temporadaID, err := juegaEnKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		var rel models.JuegaEn
		if err := validation.DecodeJSON(r.Body, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		rel.JugadorID, rel.EquipoID, rel.TemporadaID = jugadorID, equipoID, temporadaID
		if err := validation.Struct(&rel); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.UpdateJuegaEn(jugadorID, equipoID, temporadaID, &rel); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, rel)
	}
}

func deleteJuegaEn(h *jeH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, equipoID, temporadaID, err := juegaEnKey(r)
		if err != nil {
			handleError(w, err, "")
			return
		}

		deleted, err := h.DeleteJuegaEn(jugadorID, equipoID, temporadaID)
		if err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
