package validation

import (
	"strings"
	"testing"

	"football-league/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJugador(t *testing.T, payload string) (*models.Jugador, error) {
	t.Helper()
	var jugador models.Jugador
	if err := DecodeJSON(strings.NewReader(payload), &jugador); err != nil {
		return nil, err
	}
	if err := Struct(&jugador); err != nil {
		return nil, err
	}
	return &jugador, nil
}

func TestJugadorValido(t *testing.T) {
	jugador, err := decodeJugador(t, `{
		"nombre": "Leo",
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Leo", jugador.Nombre)
	assert.Equal(t, "1995-03-02", jugador.FechaNac.String())
	assert.Equal(t, "50000", jugador.Salario.String())
}

func TestJugadorCampoAusente(t *testing.T) {
	_, err := decodeJugador(t, `{
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nombre", vErr.Field)
}

func TestJugadorCampoVacio(t *testing.T) {
	_, err := decodeJugador(t, `{
		"nombre": "",
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nombre", vErr.Field)
}

func TestJugadorFechaMalFormada(t *testing.T) {
	_, err := decodeJugador(t, `{
		"nombre": "Leo",
		"apellidos": "Gomez",
		"fecha_nac": "02/03/1995",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestJugadorTipoIncorrecto(t *testing.T) {
	_, err := decodeJugador(t, `{
		"nombre": 12345,
		"apellidos": "Gomez",
		"fecha_nac": "1995-03-02",
		"nacionalidad": "ARG",
		"posicion": "Forward",
		"salario": 50000.00
	}`)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nombre", vErr.Field)
}

func TestEntrenadorExperienciaNegativa(t *testing.T) {
	var entrenador models.Entrenador
	payload := `{
		"nombre": "Pep",
		"apellidos": "Guardiola",
		"fecha_nac": "1971-01-18",
		"nacionalidad": "ESP",
		"años_experiencia": -3
	}`
	require.NoError(t, DecodeJSON(strings.NewReader(payload), &entrenador))

	err := Struct(&entrenador)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "años_experiencia", vErr.Field)
}

func TestEntrenadorSinExperiencia(t *testing.T) {
	// cero años es un valor legal, el campo solo tiene que estar presente
	var entrenador models.Entrenador
	payload := `{
		"nombre": "Xavi",
		"apellidos": "Hernandez",
		"fecha_nac": "1980-01-25",
		"nacionalidad": "ESP",
		"años_experiencia": 0
	}`
	require.NoError(t, DecodeJSON(strings.NewReader(payload), &entrenador))
	require.NoError(t, Struct(&entrenador))
}

func TestJuegaEnFechaFinOpcional(t *testing.T) {
	var rel models.JuegaEn
	payload := `{"jugador_id":1,"equipo_id":2,"temporada_id":2024,"fecha_inicio":"2024-01-01"}`
	require.NoError(t, DecodeJSON(strings.NewReader(payload), &rel))
	require.NoError(t, Struct(&rel))
	assert.Nil(t, rel.FechaFin)
}

func TestJuegaEnSinFechaInicio(t *testing.T) {
	var rel models.JuegaEn
	payload := `{"jugador_id":1,"equipo_id":2,"temporada_id":2024}`
	require.NoError(t, DecodeJSON(strings.NewReader(payload), &rel))

	err := Struct(&rel)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fecha_inicio", vErr.Field)
}
