package models

// JuegaEn asocia un jugador con un equipo durante una temporada. La clave es
// compuesta y la aporta el cliente; fecha_fin en NULL significa que la
// relación sigue activa. Las tablas equipo y temporada pertenecen a otro
// servicio, sus claves foráneas se declaran en internal/db.
type JuegaEn struct {
	JugadorID   int64 `gorm:"column:jugador_id;primaryKey;autoIncrement:false" json:"jugador_id" validate:"required"`
	EquipoID    int64 `gorm:"column:equipo_id;primaryKey;autoIncrement:false" json:"equipo_id" validate:"required"`
	TemporadaID int64 `gorm:"column:temporada_id;primaryKey;autoIncrement:false" json:"temporada_id" validate:"required"`
	FechaInicio Date  `gorm:"type:date;not null" json:"fecha_inicio" validate:"required"`
	FechaFin    *Date `gorm:"type:date" json:"fecha_fin"`

	Jugador *Jugador `gorm:"foreignKey:JugadorID;references:JugadorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (JuegaEn) TableName() string {
	return "juega_en"
}
