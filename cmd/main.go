package main

import (
	"os"

	"football-league/config"
	"football-league/internal/bot"
	wsh "football-league/internal/WSH"
	dbpkg "football-league/internal/db"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error inicializando la configuración")
	}

	// La conexión se abre una vez y vive lo que vive el proceso.
	DB := dbpkg.InitDatabase(cfg)

	// El bot de administración es opcional, solo arranca con token.
	if cfg.TgApiToken != "" {
		tgBot, err := bot.NewBot(cfg, DB)
		if err != nil {
			log.Fatal().Err(err).Msg("No se pudo inicializar el bot de Telegram")
		}
		go tgBot.Run()
	}

	wsh.StartWS(DB, *cfg)
}
