package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/models"
)

// Notifier publishes a digest of a finished report to a Telegram chat
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// New creates a notifier for the given bot token and destination chat
func New(token string, chatID int64, logger zerolog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().
		Str("username", api.Self.UserName).
		Int64("id", api.Self.ID).
		Msg("Telegram bot authorized")

	return &Notifier{
		api:    api,
		chatID: chatID,
		logger: logger.With().Str("component", "notifier").Logger(),
	}, nil
}

// SendDigest formats the report into a readable message and sends it
func (n *Notifier) SendDigest(chatName string, year int, stats *models.AllStats) error {
	text := formatDigest(chatName, year, stats)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send report digest: %w", err)
	}

	n.logger.Info().
		Int64("chat_id", n.chatID).
		Int("digest_length", len(text)).
		Msg("Report digest sent")

	return nil
}

// formatDigest renders the headline numbers of a report as plain text
func formatDigest(chatName string, year int, stats *models.AllStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 %s — итоги %d\n\n", chatName, year))

	msgStats := stats.ChatStats.MessagesStats
	sb.WriteString(fmt.Sprintf("✉️ Сообщений: %d (вы: %d, собеседник: %d)\n",
		msgStats.TotalMessagesCount, msgStats.OwnerMessagesCount, msgStats.MemberMessagesCount))
	sb.WriteString(fmt.Sprintf("🔤 Символов: %d\n", stats.ChatStats.AdditionalMessagesStats.TotalCharactersCount))
	sb.WriteString(fmt.Sprintf("📈 В среднем в день: %.1f\n", stats.AverageMessagesPerDay))
	sb.WriteString(fmt.Sprintf("💬 Самый длинный разговор: %d сообщений\n", stats.LongestConversation.TotalMessagesCount))

	if stats.CallsStats.TotalCallsDurationsMin > 0 {
		sb.WriteString(fmt.Sprintf("📞 Минут в звонках: %d\n", stats.CallsStats.TotalCallsDurationsMin))
	}
	if stats.Streak != nil && stats.Streak.Count > 0 {
		sb.WriteString(fmt.Sprintf("🔥 Дней подряд: %d (%s — %s)\n",
			stats.Streak.Count,
			stats.Streak.Start.Format("02.01"),
			stats.Streak.End.Format("02.01")))
	}
	if stats.TopEmoji.Count > 0 {
		sb.WriteString(fmt.Sprintf("%s Любимое эмодзи: %d раз\n", stats.TopEmoji.Emoji, stats.TopEmoji.Count))
	}
	if len(stats.TopWords) > 0 {
		limit := 5
		if len(stats.TopWords) < limit {
			limit = len(stats.TopWords)
		}
		words := make([]string, 0, limit)
		for _, word := range stats.TopWords[:limit] {
			words = append(words, word.Word)
		}
		sb.WriteString(fmt.Sprintf("🗯 Частые слова: %s\n", strings.Join(words, ", ")))
	}
	if stats.Narrative != "" {
		sb.WriteString("\n")
		sb.WriteString(stats.Narrative)
	}

	return sb.String()
}
