package models

import (
	"fmt"
	"time"
)

// Config represents application configuration
type Config struct {
	// Input/output
	InputPath  string
	OutputPath string

	// Analytics settings
	OwnerID            string
	Year               int
	StartDate          string // optional explicit override, YYYY-MM-DD
	EndDate            string // optional explicit override, YYYY-MM-DD
	SearchPattern      string
	TopWordsLimit      int
	ConversationGapMin int
	StickerPlaceholder string

	// App settings
	LogLevel    string
	Environment string

	// Supabase settings (optional chat/report persistence)
	SupabaseURL     string
	SupabaseKey     string
	SupabaseTimeout int

	// Telegram settings (optional report digest)
	TelegramToken  string
	TelegramChatID int64

	// Gemini API settings (optional narrative generation)
	GeminiAPIKey  string
	GeminiTimeout int

	// Scheduler settings (optional repeated runs)
	CronSpec string
}

// DateRange resolves the inclusive filtering range: explicit start/end
// dates when configured, otherwise the whole report year
func (c *Config) DateRange() (time.Time, time.Time, error) {
	if c.StartDate != "" || c.EndDate != "" {
		start, err := time.Parse("2006-01-02", c.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid START_DATE %q: %w", c.StartDate, err)
		}
		end, err := time.Parse("2006-01-02", c.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid END_DATE %q: %w", c.EndDate, err)
		}
		end = end.Add(24*time.Hour - time.Second)
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("END_DATE %s is before START_DATE %s", c.EndDate, c.StartDate)
		}
		return start, end, nil
	}

	start := time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(c.Year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end, nil
}

// ConversationGap returns the burst threshold as a duration
func (c *Config) ConversationGap() time.Duration {
	return time.Duration(c.ConversationGapMin) * time.Minute
}
