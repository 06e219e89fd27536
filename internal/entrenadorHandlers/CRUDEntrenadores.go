package entrenadorhandlers

import (
	"errors"

	"football-league/internal/models"

	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
}

func (h *Handler) CreateEntrenador(entrenador *models.Entrenador) error {
	if err := h.DB.Create(entrenador).Error; err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) GetEntrenadorByID(entrenadorID int64) (*models.Entrenador, error) {
	var entrenador models.Entrenador
	err := h.DB.First(&entrenador, "entrenador_id = ?", entrenadorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	} else if err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return &entrenador, nil
}

func (h *Handler) GetAllEntrenadores() ([]models.Entrenador, error) {
	var entrenadores []models.Entrenador
	if err := h.DB.Find(&entrenadores).Error; err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return entrenadores, nil
}

// UpdateEntrenador reemplaza todos los campos no clave; cero filas afectadas
// no es un error.
func (h *Handler) UpdateEntrenador(entrenadorID int64, entrenador *models.Entrenador) error {
	entrenador.EntrenadorID = entrenadorID
	err := h.DB.Model(&models.Entrenador{}).
		Where("entrenador_id = ?", entrenadorID).
		Updates(map[string]interface{}{
			"nombre":           entrenador.Nombre,
			"apellidos":        entrenador.Apellidos,
			"fecha_nac":        entrenador.FechaNac,
			"nacionalidad":     entrenador.Nacionalidad,
			"años_experiencia": entrenador.AñosExperiencia,
		}).Error
	if err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) DeleteEntrenador(entrenadorID int64) (int64, error) {
	result := h.DB.Delete(&models.Entrenador{}, "entrenador_id = ?", entrenadorID)
	if result.Error != nil {
		return 0, &models.StorageError{Err: result.Error}
	}
	return result.RowsAffected, nil
}
