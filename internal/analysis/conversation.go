package analysis

import (
	"time"

	"github.com/telegram-chat-stats/internal/models"
)

// LongestConversation finds the longest burst of messages where every
// gap between consecutive messages stays strictly under the threshold.
// Input must be sorted chronologically; the caller sorts once before
// any time-windowed aggregation. Ties keep the earliest burst.
func LongestConversation(messages []models.Message, gap time.Duration) []models.Message {
	var longest, current []models.Message

	for i := range messages {
		if len(current) == 0 {
			current = append(current, messages[i])
			continue
		}

		elapsed := messages[i].Date.Time.Sub(current[len(current)-1].Date.Time)
		if elapsed < gap {
			current = append(current, messages[i])
			continue
		}

		// Burst closed: promote it if strictly longer, then start over
		if len(current) > len(longest) {
			longest = current
		}
		current = []models.Message{messages[i]}
	}

	// The final open burst competes too
	if len(current) > len(longest) {
		longest = current
	}

	return longest
}
