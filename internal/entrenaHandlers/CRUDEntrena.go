package entrenahandlers

import (
	"errors"

	"football-league/internal/models"

	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
}

func (h *Handler) CreateEntrena(rel *models.Entrena) error {
	if err := h.DB.Create(rel).Error; err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) GetEntrena(entrenadorID, equipoID, temporadaID int64) (*models.Entrena, error) {
	var rel models.Entrena
	err := h.DB.First(&rel, "entrenador_id = ? AND equipo_id = ? AND temporada_id = ?",
		entrenadorID, equipoID, temporadaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	} else if err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return &rel, nil
}

func (h *Handler) GetAllEntrena() ([]models.Entrena, error) {
	var rels []models.Entrena
	if err := h.DB.Find(&rels).Error; err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return rels, nil
}

func (h *Handler) UpdateEntrena(entrenadorID, equipoID, temporadaID int64, rel *models.Entrena) error {
	err := h.DB.Model(&models.Entrena{}).
		Where("entrenador_id = ? AND equipo_id = ? AND temporada_id = ?", entrenadorID, equipoID, temporadaID).
		Updates(map[string]interface{}{
			"fecha_inicio": rel.FechaInicio,
			"fecha_fin":    rel.FechaFin,
		}).Error
	if err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) DeleteEntrena(entrenadorID, equipoID, temporadaID int64) (int64, error) {
	result := h.DB.Where("entrenador_id = ? AND equipo_id = ? AND temporada_id = ?",
		entrenadorID, equipoID, temporadaID).Delete(&models.Entrena{})
	if result.Error != nil {
		return 0, &models.StorageError{Err: result.Error}
	}
	return result.RowsAffected, nil
}
