package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/sizebots/sizebot-go/config"
	"github.com/sizebots/sizebot-go/internal/db"
	"github.com/sizebots/sizebot-go/internal/db/repositories/chat"
	"github.com/sizebots/sizebot-go/internal/db/repositories/sizehistory"
	"github.com/sizebots/sizebot-go/internal/db/repositories/user"
	"github.com/sizebots/sizebot-go/internal/healthcheck"
	"github.com/sizebots/sizebot-go/internal/logging"
	"github.com/sizebots/sizebot-go/internal/services/commands"
	"github.com/sizebots/sizebot-go/internal/services/cooldown"
	"github.com/sizebots/sizebot-go/internal/services/game"
)

func StartBot() error {
	cfg := config.LoadConfigOrPanic()
	logger := logging.NewLogger(cfg.LogConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info().Str("app", cfg.AppConfig.APPName).Str("version", cfg.AppConfig.Version).Msg("starting bot")
	healthcheck.StartHealthcheck(ctx, cfg.AppConfig, logger)

	database, err := db.NewDatabase(cfg.DBConfig)
	if err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	userRepo := user.NewUserRepository(database)
	chatRepo := chat.NewChatRepository(database)
	historyRepo := sizehistory.NewHistoryRepository(database)

	g := game.NewGame(cfg.GameConfig)
	gate := cooldown.NewGate(historyRepo, cfg.GameConfig.CooldownSeconds, logger)
	controller := commands.NewCommandController(userRepo, chatRepo, historyRepo, g, gate, cfg.GameConfig, logger)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramConfig.Token)
	if err != nil {
		return err
	}
	api.Debug = cfg.TelegramConfig.Debug
	logger.Info().Str("username", api.Self.UserName).Msg("authorized on telegram")

	setMyCommands(api, logger)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.TelegramConfig.UpdateTimeout
	updates := api.GetUpdatesChan(updateConfig)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("shutting down")
		api.StopReceivingUpdates()
		cancel()
	}()

	for update := range updates {
		go handleUpdate(ctx, api, controller, logger, update)
	}
	return nil
}

func handleUpdate(ctx context.Context, api *tgbotapi.BotAPI, controller commands.CommandController, logger zerolog.Logger, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || !msg.IsCommand() {
		return
	}

	req := commands.Request{
		UserID:    msg.From.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		ChatID:    msg.Chat.ID,
		ChatType:  msg.Chat.Type,
		ChatTitle: msg.Chat.Title,
	}

	reply, err := controller.HandleCommand(ctx, msg.Command(), req)
	if err != nil {
		logger.Warn().Err(err).Str("command", msg.Command()).Msg("command returned error")
	}
	if reply == "" {
		return
	}

	if _, err := api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("could not send reply")
	}
}

func setMyCommands(api *tgbotapi.BotAPI, logger zerolog.Logger) {
	botCommands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "grow", Description: "Change your size"},
		{Command: "stats", Description: "Show your stats"},
		{Command: "top", Description: "Leaderboard"},
		{Command: "history", Description: "Recent changes"},
		{Command: "help", Description: "Command reference"},
	}

	if _, err := api.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		logger.Warn().Err(err).Msg("could not register bot commands")
	}
}
