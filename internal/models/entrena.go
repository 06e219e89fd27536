package models

// Entrena asocia un entrenador con un equipo durante una temporada.
// Misma forma que JuegaEn pero con clave de entrenador.
type Entrena struct {
	EntrenadorID int64 `gorm:"column:entrenador_id;primaryKey;autoIncrement:false" json:"entrenador_id" validate:"required"`
	EquipoID     int64 `gorm:"column:equipo_id;primaryKey;autoIncrement:false" json:"equipo_id" validate:"required"`
	TemporadaID  int64 `gorm:"column:temporada_id;primaryKey;autoIncrement:false" json:"temporada_id" validate:"required"`
	FechaInicio  Date  `gorm:"type:date;not null" json:"fecha_inicio" validate:"required"`
	FechaFin     *Date `gorm:"type:date" json:"fecha_fin"`

	Entrenador *Entrenador `gorm:"foreignKey:EntrenadorID;references:EntrenadorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Entrena) TableName() string {
	return "entrena"
}
