package db

import (
	"fmt"

	"football-league/config"
	"football-league/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User_DB, cfg.PasswordDB, cfg.DBName)

	// Cada operación CRUD es una única sentencia, no hace falta la
	// transacción implícita de gorm.
	DB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("No se pudo conectar a la base de datos")
	}

	err = DB.AutoMigrate(&models.Jugador{}, &models.Entrenador{}, &models.JuegaEn{}, &models.Entrena{})
	if err != nil {
		log.Fatal().Err(err).Msg("Error en la migración de la base de datos")
	}

	addExternalConstraints(DB)
	return DB
}

// Las tablas equipo y temporada las gestiona otro servicio, así que
// AutoMigrate no puede declarar sus claves foráneas. Se añaden aquí a mano;
// si las tablas aún no existen solo se avisa.
func addExternalConstraints(DB *gorm.DB) {
	constraints := []struct {
		model any
		name  string
		ddl   string
	}{
		{&models.JuegaEn{}, "fk_juega_en_equipo",
			"ALTER TABLE juega_en ADD CONSTRAINT fk_juega_en_equipo FOREIGN KEY (equipo_id) REFERENCES equipo (equipo_id) ON DELETE CASCADE"},
		{&models.JuegaEn{}, "fk_juega_en_temporada",
			"ALTER TABLE juega_en ADD CONSTRAINT fk_juega_en_temporada FOREIGN KEY (temporada_id) REFERENCES temporada (temporada_id) ON DELETE CASCADE"},
		{&models.Entrena{}, "fk_entrena_equipo",
			"ALTER TABLE entrena ADD CONSTRAINT fk_entrena_equipo FOREIGN KEY (equipo_id) REFERENCES equipo (equipo_id) ON DELETE CASCADE"},
		{&models.Entrena{}, "fk_entrena_temporada",
			"ALTER TABLE entrena ADD CONSTRAINT fk_entrena_temporada FOREIGN KEY (temporada_id) REFERENCES temporada (temporada_id) ON DELETE CASCADE"},
	}

	for _, c := range constraints {
		if DB.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		if err := DB.Exec(c.ddl).Error; err != nil {
			log.Warn().Err(err).Str("constraint", c.name).
				Msg("No se pudo crear la clave foránea externa")
		}
	}
}
