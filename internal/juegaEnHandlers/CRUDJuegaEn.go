package juegaenhandlers

import (
	"errors"

	"football-league/internal/models"

	"gorm.io/gorm"
)

type Handler struct {
	models.Handler
}

// CreateJuegaEn persiste la relación; la clave compuesta la aporta el
// llamante, aquí no se genera nada. Una clave foránea huérfana la rechaza la
// propia base de datos.
func (h *Handler) CreateJuegaEn(rel *models.JuegaEn) error {
	if err := h.DB.Create(rel).Error; err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) GetJuegaEn(jugadorID, equipoID, temporadaID int64) (*models.JuegaEn, error) {
	var rel models.JuegaEn
	err := h.DB.First(&rel, "jugador_id = ? AND equipo_id = ? AND temporada_id = ?",
		jugadorID, equipoID, temporadaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	} else if err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return &rel, nil
}

func (h *Handler) GetAllJuegaEn() ([]models.JuegaEn, error) {
	var rels []models.JuegaEn
	if err := h.DB.Find(&rels).Error; err != nil {
		return nil, &models.StorageError{Err: err}
	}
	return rels, nil
}

// UpdateJuegaEn reemplaza las fechas de la fila indicada por la clave
// compuesta. El mapa permite poner fecha_fin a NULL; cero filas afectadas no
// es un error.
func (h *Handler) UpdateJuegaEn(jugadorID, equipoID, temporadaID int64, rel *models.JuegaEn) error {
	err := h.DB.Model(&models.JuegaEn{}).
		Where("jugador_id = ? AND equipo_id = ? AND temporada_id = ?", jugadorID, equipoID, temporadaID).
		Updates(map[string]interface{}{
			"fecha_inicio": rel.FechaInicio,
			"fecha_fin":    rel.FechaFin,
		}).Error
	if err != nil {
		return &models.StorageError{Err: err}
	}
	return nil
}

func (h *Handler) DeleteJuegaEn(jugadorID, equipoID, temporadaID int64) (int64, error) {
	result := h.DB.Where("jugador_id = ? AND equipo_id = ? AND temporada_id = ?",
		jugadorID, equipoID, temporadaID).Delete(&models.JuegaEn{})
	if result.Error != nil {
		return 0, &models.StorageError{Err: result.Error}
	}
	return result.RowsAffected, nil
}
