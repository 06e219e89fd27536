package wsh

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"football-league/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var jugadorColumns = []string{
	"jugador_id", "nombre", "apellidos", "fecha_nac", "nacionalidad", "posicion", "salario",
}

var juegaEnColumns = []string{
	"jugador_id", "equipo_id", "temporada_id", "fecha_inicio", "fecha_fin",
}

func newTestRouter(t *testing.T) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	DB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewRouter(DB), mock
}

func doRequest(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateJugador(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`INSERT INTO "jugador"`).
		WillReturnRows(sqlmock.NewRows([]string{"jugador_id"}).AddRow(int64(1)))

	rec := doRequest(router, http.MethodPost, "/jugadores/", `{
		"nombre": "Leo",
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var jugador models.Jugador
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jugador))
	assert.Equal(t, int64(1), jugador.JugadorID)
	assert.Equal(t, "Leo", jugador.Nombre)
	assert.Equal(t, "1995-03-02", jugador.FechaNac.String())
	assert.True(t, jugador.Salario.Equal(decimal.RequireFromString("50000.00")))
}

func TestCreateJugadorInvalido(t *testing.T) {
	router, _ := newTestRouter(t)

	// sin nombre
	rec := doRequest(router, http.MethodPost, "/jugadores/", `{
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nombre")

	// fecha mal formada
	rec = doRequest(router, http.MethodPost, "/jugadores/", `{
		"nombre": "Leo",
		"apellidos": "Gomez",
		"fecha_nac": "02/03/1995",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJugadorNoEncontrado(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "jugador"`).
		WillReturnRows(sqlmock.NewRows(jugadorColumns))

	rec := doRequest(router, http.MethodGet, "/jugadores/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jugador no encontrado")
}

func TestListJugadoresVacio(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "jugador"`).
		WillReturnRows(sqlmock.NewRows(jugadorColumns))

	rec := doRequest(router, http.MethodGet, "/jugadores/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// La actualización devuelve el propio cuerpo de la petición con la clave de
// la ruta, sin releer la fila; una clave inexistente no produce 404.
func TestUpdateJugadorEcoDeEntrada(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`UPDATE "jugador"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doRequest(router, http.MethodPut, "/jugadores/42", `{
		"nombre": "Leo",
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Midfielder",
		"salario": 60000.00
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var jugador models.Jugador
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jugador))
	assert.Equal(t, int64(42), jugador.JugadorID)
	assert.Equal(t, "Midfielder", jugador.Posicion)
}

func TestDeleteJugador(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM "jugador"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodDelete, "/jugadores/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": 1}`, rec.Body.String())
}

func TestDeleteJugadorAusente(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM "jugador"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doRequest(router, http.MethodDelete, "/jugadores/999999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": 0}`, rec.Body.String())
}

func TestCreateJuegaEnSinFechaFin(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`INSERT INTO "juega_en"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodPost, "/juega_en/", `{
		"jugador_id": 1,
		"equipo_id": 2,
		"temporada_id": 2024,
		"fecha_inicio": "2024-01-01"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fecha_fin":null`)
}

func TestGetJuegaEnPorClaveCompuesta(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "juega_en"`).
		WillReturnRows(sqlmock.NewRows(juegaEnColumns).
			AddRow(int64(1), int64(2), int64(2024),
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil))

	rec := doRequest(router, http.MethodGet, "/juega_en/1/2/2024", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rel models.JuegaEn
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rel))
	assert.Equal(t, int64(1), rel.JugadorID)
	assert.Equal(t, int64(2), rel.EquipoID)
	assert.Equal(t, int64(2024), rel.TemporadaID)
	assert.Nil(t, rel.FechaFin)
}

// Tras el borrado en cascada del jugador la asociación ya no existe.
func TestGetJuegaEnNoEncontrado(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "juega_en"`).
		WillReturnRows(sqlmock.NewRows(juegaEnColumns))

	rec := doRequest(router, http.MethodGet, "/juega_en/1/2/2024", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "JuegaEn no encontrado")
}

func TestGetJuegaEnClaveNoNumerica(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/juega_en/uno/2/2024", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntrenaRoutes(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`INSERT INTO "entrena"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(router, http.MethodPost, "/entrena/", `{
		"entrenador_id": 5,
		"equipo_id": 2,
		"temporada_id": 2024,
		"fecha_inicio": "2024-07-01",
		"fecha_fin": "2025-06-30"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fecha_fin":"2025-06-30"`)

	mock.ExpectExec(`DELETE FROM "entrena"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec = doRequest(router, http.MethodDelete, "/entrena/5/2/2024", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": 1}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodOptions, "/jugadores/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
}
