package models

import "github.com/shopspring/decimal"

func init() {
	// el salario viaja como número JSON, no como cadena
	decimal.MarshalJSONWithoutQuotes = true
}

type Jugador struct {
	JugadorID    int64           `gorm:"column:jugador_id;primaryKey" json:"jugador_id"`
	Nombre       string          `gorm:"size:50;not null" json:"nombre" validate:"required"`
	Apellidos    string          `gorm:"size:50;not null" json:"apellidos" validate:"required"`
	FechaNac     Date            `gorm:"type:date;not null" json:"fecha_nac" validate:"required"`
	Nacionalidad string          `gorm:"size:50;not null" json:"nacionalidad" validate:"required"`
	Posicion     string          `gorm:"size:50;not null" json:"posicion" validate:"required"` // texto libre, sin enum
	Salario      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"salario" validate:"required"`
}

func (Jugador) TableName() string {
	return "jugador"
}
