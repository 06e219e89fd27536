package wsh

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"football-league/config"
	"football-league/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NewRouter monta los cuatro grupos de recursos REST. Cada grupo se cuelga
// con Mount, así las rutas responden con y sin barra final.
func NewRouter(DB *gorm.DB) chi.Router {
	r := chi.NewRouter()
	r.Use(withCORS)

	r.Mount("/jugadores", JugadoresRoutes(DB))
	r.Mount("/entrenadores", EntrenadoresRoutes(DB))
	r.Mount("/juega_en", JuegaEnRoutes(DB))
	r.Mount("/entrena", EntrenaRoutes(DB))

	return r
}

func StartWS(DB *gorm.DB, cfg config.Config) {
	if DB == nil {
		log.Fatal().Msg("La base de datos no está inicializada")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("Servidor HTTP iniciado")

	if err := http.ListenAndServe(addr, NewRouter(DB)); err != nil {
		log.Fatal().Err(err).Msg("Error arrancando el servidor HTTP")
	}
}

// withCORS permite peticiones desde cualquier origen, método y cabecera.
// No es una barrera de seguridad.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error codificando la respuesta")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// handleError traduce la taxonomía de errores a códigos HTTP:
// ValidationError → 400, ErrNotFound → 404, StorageError → 500.
func handleError(w http.ResponseWriter, err error, notFoundDetail string) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeDetail(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, models.ErrNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail)
	default:
		log.Error().Err(err).Msg("Fallo de almacenamiento")
		writeDetail(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "debe ser un entero"}
	}
	return id, nil
}
