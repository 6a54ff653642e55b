package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/metrics"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		// The real logger depends on configuration; report with a default one.
		logrus.WithError(err).Error("FATAL: Required environment variables are missing, bot cannot start")
		return 1
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"chat_id":     cfg.TelegramChatID,
		"schedule":    cfg.PollSchedule,
	}).Info("Configuration loaded")

	loop, err := scheduler.NewLoop(cfg.PollSchedule, log.WithField("component", "scheduler"))
	if err != nil {
		mainLogger.WithError(err).Error("FATAL: Could not parse poll schedule")
		return 1
	}

	bot, err := telegram.NewTelebotBot(cfg.TelegramAPIURL, cfg.TelegramToken, cfg.HTTPTimeout)
	if err != nil {
		mainLogger.WithError(err).Error("FATAL: Could not create Telegram bot")
		return 1
	}
	notifier := telegram.NewNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.TelegramChatID,
		log.WithField("component", "notifier"),
	)

	fetcher := practicum.NewClient(
		cfg.PracticumEndpoint,
		cfg.PracticumToken,
		cfg.HTTPTimeout,
		log.WithField("component", "practicum"),
	)

	poller := app.NewPoller(fetcher, notifier, loop, log.WithField("component", "poller"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, log.WithField("component", "metrics")); err != nil {
				mainLogger.WithError(err).Error("Metrics server failed")
			}
		}()
	}

	mainLogger.Info("Homework status bot started")
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll loop terminated unexpectedly")
		return 1
	}

	mainLogger.Info("Shutting down: interrupt received")
	return 0
}
