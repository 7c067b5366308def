package analysis

import (
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/telegram-chat-stats/internal/models"
)

const (
	defaultConversationGap    = 15 * time.Minute
	defaultTopWordsLimit      = 100
	defaultStickerPlaceholder = "(File not included"
)

// Options configures a single analytics run. Zero values fall back to
// the defaults the Telegram export analysis ships with.
type Options struct {
	// OwnerID identifies the primary participant; every other sender
	// counts as "member"
	OwnerID string

	// SearchPattern, when set, drives the phrase-occurrence sub-report
	SearchPattern *regexp.Regexp

	// ConversationGap is the strict upper bound on the gap between
	// consecutive messages of one burst (default 15 minutes)
	ConversationGap time.Duration

	// TopWordsLimit truncates the word ranking (default 100)
	TopWordsLimit int

	// StopWords excludes tokens from the word ranking
	// (default: the built-in Russian set)
	StopWords map[string]struct{}

	// StickerPlaceholder marks file references of media that was not
	// exported (default "(File not included")
	StickerPlaceholder string
}

// Analyzer composes every aggregator into the final report. It is the
// only component aware of the full report shape; the aggregators stay
// independent of each other.
type Analyzer struct {
	opts   Options
	logger zerolog.Logger
}

// New creates an analyzer with defaults applied
func New(opts Options, logger zerolog.Logger) *Analyzer {
	if opts.ConversationGap <= 0 {
		opts.ConversationGap = defaultConversationGap
	}
	if opts.TopWordsLimit <= 0 {
		opts.TopWordsLimit = defaultTopWordsLimit
	}
	if opts.StopWords == nil {
		opts.StopWords = DefaultStopWords()
	}
	if opts.StickerPlaceholder == "" {
		opts.StickerPlaceholder = defaultStickerPlaceholder
	}

	return &Analyzer{
		opts:   opts,
		logger: logger.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze restricts the chat to the inclusive [start, end] range, sorts
// it chronologically, and runs every aggregator over the filtered set.
// The filter+sort step is the only mutation of the chat; everything
// after it is read-only.
func (a *Analyzer) Analyze(chat *models.Chat, start, end time.Time) *models.AllStats {
	chat.RetainByDate(start, end)
	messages := chat.Messages

	a.logger.Info().
		Int64("chat_id", chat.ID).
		Str("chat_name", chat.Name).
		Int("messages", len(messages)).
		Time("range_start", start).
		Time("range_end", end).
		Msg("Analyzing chat")

	owner := a.opts.OwnerID

	stats := &models.AllStats{
		ChatStats: models.ChatStats{
			MessagesStats:           MessageCounts(messages, owner),
			AdditionalMessagesStats: CharacterCounts(messages, owner),
		},
		LongestConversation:   MessageCounts(LongestConversation(messages, a.opts.ConversationGap), owner),
		TopEmoji:              TopEmoji(messages),
		TopWords:              TopWords(messages, a.opts.StopWords, a.opts.TopWordsLimit),
		AverageMessagesPerDay: AverageMessagesPerDay(messages),
		Streak:                MessageStreak(messages),
	}

	if a.opts.SearchPattern != nil {
		stats.Occurrences = MessageCounts(Occurrences(messages, a.opts.SearchPattern), owner)
	}

	calls := Calls(messages)
	totalSeconds := CallsDurations(calls)
	stats.CallsStats = models.CallsStats{
		TotalCallsDurationsSec: totalSeconds,
		TotalCallsDurationsMin: totalSeconds / 60,
		LongestCall:            LongestCall(calls),
	}

	ownerCount, ownerSticker := MostUsedSticker(messages, FromOwner(owner), a.opts.StickerPlaceholder)
	memberCount, memberSticker := MostUsedSticker(messages, FromMember(owner), a.opts.StickerPlaceholder)
	stats.MostUsedSticker = models.MostUsedSticker{
		OwnerMostUsedStickerCount:  ownerCount,
		OwnerMostUsedSticker:       ownerSticker,
		MemberMostUsedStickerCount: memberCount,
		MemberMostUsedSticker:      memberSticker,
	}

	a.logger.Info().
		Int("total_messages", stats.ChatStats.MessagesStats.TotalMessagesCount).
		Int("longest_conversation", stats.LongestConversation.TotalMessagesCount).
		Int("calls_seconds", stats.CallsStats.TotalCallsDurationsSec).
		Msg("Chat analysis completed")

	return stats
}
