package jugadorhandlers

import (
	"errors"

	"football-league/internal/models"

	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
}

// CreateJugador inserta un jugador nuevo; la base de datos genera la clave y
// se escribe de vuelta en la entidad.
func (h *Handler) CreateJugador(jugador *models.Jugador) error {
	if err := h.DB.Create(jugador).Error; err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) GetJugadorByID(jugadorID int64) (*models.Jugador, error) {
	var jugador models.Jugador
	err := h.DB.First(&jugador, "jugador_id = ?", jugadorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	} else if err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return &jugador, nil
}

func (h *Handler) GetAllJugadores() ([]models.Jugador, error) {
	var jugadores []models.Jugador
	if err := h.DB.Find(&jugadores).Error; err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return jugadores, nil
}

// UpdateJugador reemplaza todos los campos no clave de la fila indicada. Si
// la clave no existe la sentencia afecta cero filas y no es un error. El mapa
// evita que gorm omita campos con valor cero.
func (h *Handler) UpdateJugador(jugadorID int64, jugador *models.Jugador) error {
	jugador.JugadorID = jugadorID
	err := h.DB.Model(&models.Jugador{}).
		Where("jugador_id = ?", jugadorID).
		Updates(map[string]interface{}{
			"nombre":       jugador.Nombre,
			"apellidos":    jugador.Apellidos,
			"fecha_nac":    jugador.FechaNac,
			"nacionalidad": jugador.Nacionalidad,
			"posicion":     jugador.Posicion,
			"salario":      jugador.Salario,
		}).Error
	if err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

// DeleteJugador devuelve cuántas filas se borraron (0 o 1) para que el
// llamante distinga "no existía" de "eliminado".
func (h *Handler) DeleteJugador(jugadorID int64) (int64, error) {
	result := h.DB.Delete(&models.Jugador{}, "jugador_id = ?", jugadorID)
	if result.Error != nil {
		return 0, &models.StorageError{Err: result.Error}
	}
	return result.RowsAffected, nil
}
