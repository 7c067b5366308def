package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/models"
	"google.golang.org/api/option"
)

// narrativeModel is the Gemini model used for narrative generation
const narrativeModel = "gemini-2.0-flash"

// Generator produces a short year-in-review narrative from a computed
// report using an LLM
type Generator struct {
	apiKey      string
	timeout     time.Duration
	logger      zerolog.Logger
	genaiClient *genai.Client
}

// NewGenerator creates a new narrative generator
func NewGenerator(apiKey string, timeoutSecs int, logger zerolog.Logger) *Generator {
	return &Generator{
		apiKey:  apiKey,
		timeout: time.Duration(timeoutSecs) * time.Second,
		logger:  logger.With().Str("component", "narrative_generator").Logger(),
	}
}

// Close closes the generator and releases resources
func (g *Generator) Close() error {
	if g.genaiClient != nil {
		err := g.genaiClient.Close()
		g.genaiClient = nil
		if err != nil {
			g.logger.Error().Err(err).Msg("Failed to close Gemini client")
			return err
		}
		g.logger.Info().Msg("Narrative generator client closed")
	}
	return nil
}

// getClient returns or creates a genai client
func (g *Generator) getClient(ctx context.Context) (*genai.Client, error) {
	if g.genaiClient != nil {
		return g.genaiClient, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	g.genaiClient = client
	g.logger.Info().Msg("Narrative generator Gemini client created")
	return g.genaiClient, nil
}

// GenerateNarrative asks the LLM for a short free-text recap of the
// report. An empty report yields an empty narrative without calling out.
func (g *Generator) GenerateNarrative(ctx context.Context, chatName string, year int, stats *models.AllStats) (string, error) {
	if stats.ChatStats.MessagesStats.TotalMessagesCount == 0 {
		g.logger.Debug().Msg("No messages in report, skipping narrative")
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := g.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get genai client: %w", err)
	}

	model := client.GenerativeModel(narrativeModel)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(1024)

	prompt := buildNarrativePrompt(chatName, year, stats)

	g.logger.Debug().
		Int("prompt_length", len(prompt)).
		Msg("Sending request to LLM for narrative generation")

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates from LLM")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts in response")
	}

	var narrative strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			narrative.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(narrative.String())

	g.logger.Info().
		Int("narrative_length", len(text)).
		Msg("Narrative generation completed")

	return text, nil
}

// buildNarrativePrompt constructs the prompt for LLM
func buildNarrativePrompt(chatName string, year int, stats *models.AllStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Напиши короткий тёплый рассказ (3-5 предложений) об итогах года %d для чата «%s» по этой статистике.\n", year, chatName))
	sb.WriteString("Пиши от второго лица, без списков и без форматирования.\n\n")
	sb.WriteString("Статистика:\n")

	msgStats := stats.ChatStats.MessagesStats
	sb.WriteString(fmt.Sprintf("- Всего сообщений: %d (владелец: %d, собеседник: %d)\n",
		msgStats.TotalMessagesCount, msgStats.OwnerMessagesCount, msgStats.MemberMessagesCount))
	sb.WriteString(fmt.Sprintf("- Всего символов: %d\n", stats.ChatStats.AdditionalMessagesStats.TotalCharactersCount))
	sb.WriteString(fmt.Sprintf("- В среднем сообщений в день: %.1f\n", stats.AverageMessagesPerDay))
	sb.WriteString(fmt.Sprintf("- Самый длинный разговор: %d сообщений\n", stats.LongestConversation.TotalMessagesCount))
	sb.WriteString(fmt.Sprintf("- Минут в звонках: %d\n", stats.CallsStats.TotalCallsDurationsMin))

	if stats.Streak != nil && stats.Streak.Count > 0 {
		sb.WriteString(fmt.Sprintf("- Дней переписки подряд: %d (с %s по %s)\n",
			stats.Streak.Count,
			stats.Streak.Start.Format("2006-01-02"),
			stats.Streak.End.Format("2006-01-02")))
	}
	if stats.TopEmoji.Count > 0 {
		sb.WriteString(fmt.Sprintf("- Любимое эмодзи: %s (%d раз)\n", stats.TopEmoji.Emoji, stats.TopEmoji.Count))
	}
	if len(stats.TopWords) > 0 {
		words := make([]string, 0, 5)
		for i, word := range stats.TopWords {
			if i == 5 {
				break
			}
			words = append(words, word.Word)
		}
		sb.WriteString(fmt.Sprintf("- Частые слова: %s\n", strings.Join(words, ", ")))
	}

	sb.WriteString("\nРассказ:")

	return sb.String()
}
