package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/telegram-chat-stats/internal/models"
)

// SaveChat persists the chat row and all of its messages. Rows are
// keyed by their export identifier; an already-present row is left
// untouched, matching ON CONFLICT DO NOTHING semantics.
func (c *Client) SaveChat(ctx context.Context, chat *models.Chat) error {
	err := c.withRetry(ctx, "save_chat", func() error {
		data := map[string]interface{}{
			"id":   chat.ID,
			"name": chat.Name,
			"type": chat.Type,
		}

		_, _, err := c.client.From("chats").
			Insert(data, false, "", "", "").
			Execute()

		if err != nil {
			if isDuplicate(err) {
				c.logger.Debug().
					Int64("chat_id", chat.ID).
					Msg("Chat already exists, skipping")
				return nil
			}
			return fmt.Errorf("failed to insert chat: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return c.saveMessages(ctx, chat.ID, chat.Messages)
}

// saveMessages persists message rows in insertion order
func (c *Client) saveMessages(ctx context.Context, chatID int64, messages []models.Message) error {
	saved := 0
	for i := range messages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("message persistence aborted: %w", err)
		}
		msg := &messages[i]

		err := c.withRetry(ctx, "save_message", func() error {
			data := map[string]interface{}{
				"id":               msg.ID,
				"chat_id":          chatID,
				"type":             msg.Type,
				"action":           msg.Action,
				"date":             msg.Date.Time,
				"date_unixtime":    msg.DateUnixtime,
				"from_user":        msg.From,
				"from_id":          msg.FromID,
				"text":             msg.Text,
				"file":             msg.File,
				"file_name":        msg.FileName,
				"media_type":       msg.MediaType,
				"mime_type":        msg.MimeType,
				"duration_seconds": msg.DurationSeconds,
				"discard_reason":   msg.DiscardReason,
			}

			_, _, err := c.client.From("messages").
				Insert(data, false, "", "", "").
				Execute()

			if err != nil {
				if isDuplicate(err) {
					return nil
				}
				return fmt.Errorf("failed to insert message: %w", err)
			}
			return nil
		})
		if err != nil {
			c.logger.Error().
				Err(err).
				Int64("message_id", msg.ID).
				Int64("chat_id", chatID).
				Msg("Failed to save message")
			return err
		}

		saved++
		if saved%500 == 0 {
			c.logger.Info().Int("saved", saved).Msg("Progress...")
		}
	}

	c.logger.Info().
		Int64("chat_id", chatID).
		Int("saved", saved).
		Msg("Messages saved to database")

	return nil
}

// isDuplicate reports whether an insert hit an existing primary key
func isDuplicate(err error) bool {
	return strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique")
}
