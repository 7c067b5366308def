package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/telegram-chat-stats/internal/models"
)

// SaveReport stores a generated report in the database
// Uses upsert to allow overwriting existing reports (for regeneration)
func (c *Client) SaveReport(ctx context.Context, chatID int64, year int, stats *models.AllStats) error {
	err := c.withRetry(ctx, "save_report", func() error {
		data := map[string]interface{}{
			"chat_id":    chatID,
			"year":       year,
			"report":     stats,
			"created_at": time.Now().UTC(),
		}

		_, _, err := c.client.From("reports").
			Insert(data, true, "chat_id,year", "", "").
			Execute()

		if err != nil {
			return fmt.Errorf("failed to upsert report: %w", err)
		}

		return nil
	})
	if err != nil {
		c.logger.Error().
			Err(err).
			Int64("chat_id", chatID).
			Int("year", year).
			Msg("Failed to save report")
		return err
	}

	c.logger.Info().
		Int64("chat_id", chatID).
		Int("year", year).
		Int("total_messages", stats.ChatStats.MessagesStats.TotalMessagesCount).
		Msg("Report saved successfully")

	return nil
}
