package bot

import (
	"fmt"
	"strings"

	"football-league/config"
	enH "football-league/internal/entrenadorHandlers"
	jgH "football-league/internal/jugadorHandlers"
	"football-league/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HandlersConfig agrupa los manejadores de entidades que usa el bot.
type HandlersConfig struct {
	JugadorHandler    jgH.Handler
	EntrenadorHandler enH.Handler
}

// Bot es la consola de administración de la liga por Telegram. Solo consulta,
// las escrituras pasan siempre por la API REST.
type Bot struct {
	API      *tgbotapi.BotAPI
	Config   *config.Config
	DB       *gorm.DB
	Handlers HandlersConfig
}

func NewBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TgApiToken)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		API:    api,
		Config: cfg,
		DB:     db,
	}
	bot.initHandlers()
	return bot, nil
}

func (b *Bot) initHandlers() {
	handler := models.Handler{DB: b.DB}
	b.Handlers.JugadorHandler = jgH.Handler{Handler: handler}
	b.Handlers.EntrenadorHandler = enH.Handler{Handler: handler}
}

// Run consume el canal de actualizaciones hasta que el proceso termina.
func (b *Bot) Run() {
	log.Info().Str("account", b.API.Self.UserName).Msg("Bot de Telegram autorizado")
	updates := b.API.GetUpdatesChan(tgbotapi.NewUpdate(0))

	for update := range updates {
		if update.Message != nil {
			go b.processCommand(update.Message)
		}
	}
}

func (b *Bot) processCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	command := strings.SplitN(msg.Text, " ", 2)[0]

	if !b.isAdmin(chatID) {
		b.sendMessage(chatID, "No tienes permisos para usar este bot.")
		return
	}

	switch command {
	case "/start":
		b.sendStartMessage(chatID)
	case "/jugadores":
		b.listJugadores(chatID)
	case "/entrenadores":
		b.listEntrenadores(chatID)
	default:
		b.sendMessage(chatID, "Comando no reconocido. Usa /start para ver la ayuda.")
	}
}

func (b *Bot) listJugadores(chatID int64) {
	jugadores, err := b.Handlers.JugadorHandler.GetAllJugadores()
	if err != nil {
		b.sendMessage(chatID, "No se pudo obtener la lista de jugadores.")
		log.Error().Err(err).Msg("Error listando jugadores desde el bot")
		return
	}
	if len(jugadores) == 0 {
		b.sendMessage(chatID, "No hay jugadores registrados.")
		return
	}

	message := "Jugadores de la liga:\n"
	for _, j := range jugadores {
		message += fmt.Sprintf("- [%d] %s %s (%s, %s)\n",
			j.JugadorID, j.Nombre, j.Apellidos, j.Posicion, j.Nacionalidad)
	}
	b.sendMessage(chatID, message)
}

func (b *Bot) listEntrenadores(chatID int64) {
	entrenadores, err := b.Handlers.EntrenadorHandler.GetAllEntrenadores()
	if err != nil {
		b.sendMessage(chatID, "No se pudo obtener la lista de entrenadores.")
		log.Error().Err(err).Msg("Error listando entrenadores desde el bot")
		return
	}
	if len(entrenadores) == 0 {
		b.sendMessage(chatID, "No hay entrenadores registrados.")
		return
	}

	message := "Entrenadores de la liga:\n"
	for _, e := range entrenadores {
		años := 0
		if e.AñosExperiencia != nil {
			años = *e.AñosExperiencia
		}
		message += fmt.Sprintf("- [%d] %s %s (%d años de experiencia)\n",
			e.EntrenadorID, e.Nombre, e.Apellidos, años)
	}
	b.sendMessage(chatID, message)
}

func (b *Bot) isAdmin(chatID int64) bool {
	for _, admin := range b.Config.Admins {
		if admin == chatID {
			return true
		}
	}
	return false
}

func (b *Bot) sendStartMessage(chatID int64) {
	b.sendMessage(chatID,
		"Consola de administración de la liga.\n"+
			"/jugadores — lista de jugadores\n"+
			"/entrenadores — lista de entrenadores")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.API.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("No se pudo enviar el mensaje")
	}
}
