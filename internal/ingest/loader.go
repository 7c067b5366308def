package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/models"
)

// LoadChat reads a Telegram Desktop JSON export from disk and parses it
// into a Chat. Malformed documents and unparsable timestamps surface as
// load errors; nothing is silently defaulted.
func LoadChat(path string, logger zerolog.Logger) (*models.Chat, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	var chat models.Chat
	if err := json.NewDecoder(bufio.NewReader(file)).Decode(&chat); err != nil {
		return nil, fmt.Errorf("failed to parse export JSON: %w", err)
	}

	if err := validateMessages(chat.Messages); err != nil {
		return nil, err
	}

	logger.Info().
		Str("file", path).
		Str("chat_name", chat.Name).
		Int64("chat_id", chat.ID).
		Int("total_messages", len(chat.Messages)).
		Msg("Export file parsed successfully")

	return &chat, nil
}

// validateMessages rejects messages missing id, type or date. A zero
// timestamp means the field was absent; letting it through would make
// the message silently disappear in the date filter.
func validateMessages(messages []models.Message) error {
	for i := range messages {
		msg := &messages[i]
		switch {
		case msg.ID == 0:
			return fmt.Errorf("message at index %d has no id", i)
		case msg.Type == "":
			return fmt.Errorf("message %d has no type", msg.ID)
		case msg.Date.IsZero():
			return fmt.Errorf("message %d has no date", msg.ID)
		}
	}
	return nil
}
