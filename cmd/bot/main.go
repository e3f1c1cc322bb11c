package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	itelegram "homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

// Wall clocks before this instant are assumed broken. The condition is
// reported to the operator chat; the bot still runs on the bad clock.
const minSaneUnixTime = 1637092500

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()

	if !cfg.CheckTokens() {
		log.Fatal("Required environment variables are missing: PRACTICUM_TOKEN, TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must all be set")
	}

	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("Could not create Telegram bot: %v", err)
	}

	notifier := app.NewNotifier(itelegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)

	now := time.Now().Unix()
	if now < minSaneUnixTime {
		log.Errorf("Current time %d is earlier than the sanity bound %d", now, minSaneUnixTime)
		notifier.Notify("Сбой в определении текущего времени")
	}

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken)
	poller := app.NewPollerService(apiClient, notifier, log, cfg.PollInterval, now)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Application setup complete. Poller is starting...")
	poller.Run(ctx)
	log.Info("Application shut down gracefully.")
}
