package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/telegram-chat-stats/internal/models"
)

// Load loads configuration from environment variables
// It first attempts to load from .env file, then reads environment variables
func Load() (*models.Config, error) {
	// Try to load .env file (optional, ignore error if not found)
	_ = godotenv.Load()

	config := &models.Config{
		// Input/output
		InputPath:  getEnv("INPUT_PATH", ""),
		OutputPath: getEnv("OUTPUT_PATH", "stats.json"),

		// Analytics settings
		OwnerID:            getEnv("OWNER_ID", ""),
		Year:               getEnvInt("REPORT_YEAR", 0),
		StartDate:          getEnv("START_DATE", ""),
		EndDate:            getEnv("END_DATE", ""),
		SearchPattern:      getEnv("SEARCH_PATTERN", ""),
		TopWordsLimit:      getEnvInt("TOP_WORDS_LIMIT", 100),
		ConversationGapMin: getEnvInt("CONVERSATION_GAP_MINUTES", 15),
		StickerPlaceholder: getEnv("STICKER_PLACEHOLDER", "(File not included"),

		// App settings
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "production"),

		// Supabase settings
		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseKey:     getEnv("SUPABASE_KEY", ""),
		SupabaseTimeout: getEnvInt("SUPABASE_TIMEOUT", 10),

		// Telegram settings
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnvInt64("TELEGRAM_CHAT_ID", 0),

		// Gemini API settings
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiTimeout: getEnvInt("GEMINI_TIMEOUT", 30),

		// Scheduler settings
		CronSpec: getEnv("CRON_SPEC", ""),
	}

	// Validate configuration
	if err := validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validate checks if all required configuration values are set
func validate(cfg *models.Config) error {
	if cfg.InputPath == "" {
		return fmt.Errorf("INPUT_PATH is required")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if cfg.OwnerID == "" {
		return fmt.Errorf("OWNER_ID is required")
	}

	// Either a report year or an explicit date range must be given
	if cfg.Year == 0 && cfg.StartDate == "" && cfg.EndDate == "" {
		return fmt.Errorf("REPORT_YEAR or START_DATE/END_DATE is required")
	}
	if (cfg.StartDate == "") != (cfg.EndDate == "") {
		return fmt.Errorf("START_DATE and END_DATE must be set together")
	}
	if _, _, err := cfg.DateRange(); err != nil {
		return err
	}

	if cfg.SearchPattern != "" {
		if _, err := regexp.Compile("(?i)" + cfg.SearchPattern); err != nil {
			return fmt.Errorf("SEARCH_PATTERN is not a valid regular expression: %w", err)
		}
	}

	// Validate positive values
	if cfg.TopWordsLimit <= 0 {
		return fmt.Errorf("TOP_WORDS_LIMIT must be positive, got %d", cfg.TopWordsLimit)
	}
	if cfg.ConversationGapMin <= 0 {
		return fmt.Errorf("CONVERSATION_GAP_MINUTES must be positive, got %d", cfg.ConversationGapMin)
	}
	if cfg.SupabaseTimeout <= 0 {
		return fmt.Errorf("SUPABASE_TIMEOUT must be positive, got %d", cfg.SupabaseTimeout)
	}
	if cfg.GeminiTimeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive, got %d", cfg.GeminiTimeout)
	}

	// Optional collaborators need their settings in pairs
	if (cfg.SupabaseURL == "") != (cfg.SupabaseKey == "") {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set together")
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %s", cfg.LogLevel)
	}

	return nil
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvInt64 retrieves environment variable as int64 or returns default value
func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
