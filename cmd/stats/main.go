package main

import (
	"context"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/telegram-chat-stats/internal/analysis"
	"github.com/telegram-chat-stats/internal/config"
	"github.com/telegram-chat-stats/internal/notify"
	"github.com/telegram-chat-stats/internal/pipeline"
	"github.com/telegram-chat-stats/internal/scheduler"
	"github.com/telegram-chat-stats/internal/storage"
	"github.com/telegram-chat-stats/internal/summary"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel, cfg.Environment)
	logger.Info().
		Str("environment", cfg.Environment).
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Int("year", cfg.Year).
		Msg("Starting chat analytics")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize analyzer
	var pattern *regexp.Regexp
	if cfg.SearchPattern != "" {
		pattern = regexp.MustCompile("(?i)" + cfg.SearchPattern)
	}
	analyzer := analysis.New(analysis.Options{
		OwnerID:            cfg.OwnerID,
		SearchPattern:      pattern,
		ConversationGap:    cfg.ConversationGap(),
		TopWordsLimit:      cfg.TopWordsLimit,
		StickerPlaceholder: cfg.StickerPlaceholder,
	}, logger)

	// Initialize storage client (optional)
	var store pipeline.ChatStore
	if cfg.SupabaseURL != "" {
		logger.Info().Msg("Initializing Supabase client...")
		storageClient, err := storage.NewClient(
			cfg.SupabaseURL,
			cfg.SupabaseKey,
			cfg.SupabaseTimeout,
			logger,
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create storage client")
		}

		if err := storageClient.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Supabase")
		}
		logger.Info().Msg("Supabase connection successful")
		store = storageClient
	}

	// Initialize narrative generator (optional)
	var generator *summary.Generator
	if cfg.GeminiAPIKey != "" {
		logger.Info().Msg("Initializing Gemini narrative generator...")
		generator = summary.NewGenerator(cfg.GeminiAPIKey, cfg.GeminiTimeout, logger)
		defer func() {
			if err := generator.Close(); err != nil {
				logger.Error().Err(err).Msg("Failed to close narrative generator")
			}
		}()
	}

	// Initialize Telegram notifier (optional)
	var notifier *notify.Notifier
	if cfg.TelegramToken != "" {
		logger.Info().Msg("Initializing Telegram notifier...")
		notifier, err = notify.New(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create notifier")
		}
	}

	pipe := pipeline.New(cfg, analyzer, store, generator, notifier, logger)

	// One-shot run unless a cron spec is configured
	if cfg.CronSpec == "" {
		if err := pipe.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Analytics run failed")
		}
		logger.Info().Msg("Analytics run completed")
		return
	}

	// Scheduled mode: run once now, then on every cron tick
	if err := pipe.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Initial analytics run failed")
	}

	sched := scheduler.New(cfg.CronSpec, pipe.Run, logger)

	schedErrChan := make(chan error, 1)
	go func() {
		schedErrChan <- sched.Start(ctx)
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	logger.Info().Str("cron_spec", cfg.CronSpec).Msg("Running on schedule. Press Ctrl+C to stop.")

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("Received termination signal")
	case err := <-schedErrChan:
		if err != nil && err != context.Canceled {
			logger.Error().Err(err).Msg("Scheduler stopped with error")
		}
	}

	cancel()
	logger.Info().Msg("Analytics stopped")
}

// setupLogger configures and returns a zerolog logger
func setupLogger(level, environment string) zerolog.Logger {
	// Parse log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Configure output format
	var logger zerolog.Logger
	if environment == "development" {
		// Pretty console output for development
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Caller().Logger()
	} else {
		// JSON output for production
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return logger
}
