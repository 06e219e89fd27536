package wsh

import (
	"net/http"

	jgH "football-league/internal/jugadorHandlers"
	"football-league/internal/models"
	"football-league/internal/validation"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

func JugadoresRoutes(DB *gorm.DB) chi.Router {
	h := &jgH.Handler{Handler: models.Handler{DB: DB}}
	r := chi.NewRouter()

	r.Post("/", createJugador(h))
	r.Get("/", listJugadores(h))
	r.Get("/{jugadorID}", getJugador(h))
	r.Put("/{jugadorID}", updateJugador(h))
	r.Delete("/{jugadorID}", deleteJugador(h))

	return r
}

func createJugador(h *jgH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var jugador models.Jugador
		if err := validation.DecodeJSON(r.Body, &jugador); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&jugador); err != nil {
			handleError(w, err, "")
			return
		}

		jugador.JugadorID = 0 // la clave la genera la base de datos
		if err := h.CreateJugador(&jugador); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, jugador)
	}
}

func listJugadores(h *jgH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadores, err := h.GetAllJugadores()
		if err != nil {
			handleError(w, err, "")
			return
		}
		if jugadores == nil {
			jugadores = []models.Jugador{}
		}
		writeJSON(w, http.StatusOK, jugadores)
	}
}

func getJugador(h *jgH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, err := pathID(r, "jugadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		jugador, err := h.GetJugadorByID(jugadorID)
		if err != nil {
			handleError(w, err, "Jugador no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, jugador)
	}
}

// updateJugador reemplaza la fila completa y devuelve el propio cuerpo de la
// petición con la clave de la ruta, sin releer la fila.
func updateJugador(h *jgH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, err := pathID(r, "jugadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		var jugador models.Jugador
		if err := validation.DecodeJSON(r.Body, &jugador); err != nil {
			handleError(w, err, "")
			return
		}
		if err := validation.Struct(&jugador); err != nil {
			handleError(w, err, "")
			return
		}

		if err := h.UpdateJugador(jugadorID, &jugador); err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, jugador)
	}
}

func deleteJugador(h *jgH.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jugadorID, err := pathID(r, "jugadorID")
		if err != nil {
			handleError(w, err, "")
			return
		}

		deleted, err := h.DeleteJugador(jugadorID)
		if err != nil {
			handleError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
