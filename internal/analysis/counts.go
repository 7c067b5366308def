package analysis

import (
	"unicode/utf8"

	"github.com/telegram-chat-stats/internal/models"
)

// MessageCounts partitions messages into total/owner/member counts and
// attaches first/last message snapshots. Messages without a sender are
// included in the total but belong to neither participant group.
func MessageCounts(messages []models.Message, ownerID string) models.MessagesStats {
	stats := models.MessagesStats{TotalMessagesCount: len(messages)}

	for i := range messages {
		switch messages[i].FromID {
		case "":
		case ownerID:
			stats.OwnerMessagesCount++
		default:
			stats.MemberMessagesCount++
		}
	}

	if first := FirstMessage(messages); first != nil {
		snapshot := models.NewMinimalMessage(*first)
		stats.FirstMessage = &snapshot
	}
	if last := LastMessage(messages); last != nil {
		snapshot := models.NewMinimalMessage(*last)
		stats.LastMessage = &snapshot
	}

	return stats
}

// CharacterCounts sums extracted-text lengths in Unicode code points,
// partitioned the same way as MessageCounts. Rune counts keep the
// numbers correct for multi-byte scripts.
func CharacterCounts(messages []models.Message, ownerID string) models.AdditionalMessagesStats {
	var stats models.AdditionalMessagesStats

	for i := range messages {
		length := utf8.RuneCountInString(messages[i].Text.String())
		stats.TotalCharactersCount += length
		switch messages[i].FromID {
		case "":
		case ownerID:
			stats.OwnerCharactersCount += length
		default:
			stats.MemberCharactersCount += length
		}
	}

	return stats
}

// FirstMessage returns the chronologically earliest message, or nil for
// an empty set. Does not require sorted input.
func FirstMessage(messages []models.Message) *models.Message {
	var first *models.Message
	for i := range messages {
		if first == nil || messages[i].Date.Time.Before(first.Date.Time) {
			first = &messages[i]
		}
	}
	return first
}

// LastMessage returns the chronologically latest message, or nil for an
// empty set. Does not require sorted input.
func LastMessage(messages []models.Message) *models.Message {
	var last *models.Message
	for i := range messages {
		if last == nil || messages[i].Date.Time.After(last.Date.Time) {
			last = &messages[i]
		}
	}
	return last
}

// AverageMessagesPerDay divides the message count by the number of
// distinct active days. An empty set yields 0.
func AverageMessagesPerDay(messages []models.Message) float64 {
	if len(messages) == 0 {
		return 0
	}

	days := make(map[string]struct{})
	for i := range messages {
		days[messages[i].Date.Format("2006-01-02")] = struct{}{}
	}

	return float64(len(messages)) / float64(len(days))
}
