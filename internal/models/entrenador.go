package models

type Entrenador struct {
	EntrenadorID    int64  `gorm:"column:entrenador_id;primaryKey" json:"entrenador_id"`
	Nombre          string `gorm:"size:50;not null" json:"nombre" validate:"required"`
	Apellidos       string `gorm:"size:50;not null" json:"apellidos" validate:"required"`
	FechaNac        Date   `gorm:"type:date;not null" json:"fecha_nac" validate:"required"`
	Nacionalidad    string `gorm:"size:50;not null" json:"nacionalidad" validate:"required"`
	AñosExperiencia *int   `gorm:"column:años_experiencia;not null" json:"años_experiencia" validate:"required,gte=0"`
}

func (Entrenador) TableName() string {
	return "entrenador"
}
