package analysis

import "github.com/telegram-chat-stats/internal/models"

// MessageStreak finds the longest run of calendar-consecutive active
// days. Input must be sorted chronologically; dates running backwards
// are a caller error. Returns nil when the message set is empty.
func MessageStreak(messages []models.Message) *models.Streak {
	if len(messages) == 0 {
		return nil
	}

	var best, current models.Streak
	var prev models.Day

	for i := range messages {
		day := models.NewDay(messages[i].Date.Time)

		switch {
		case current.Count == 0:
			current = models.Streak{Count: 1, Start: day, End: day}
		case day.Time.Equal(prev.Next().Time):
			current.Count++
			current.End = day
		case day.Time.After(prev.Next().Time):
			if current.Count > best.Count {
				best = current
			}
			current = models.Streak{Count: 1, Start: day, End: day}
		}
		// Same-day repeats neither extend nor reset the streak

		prev = day
	}

	// The final streak competes too
	if current.Count > best.Count {
		best = current
	}

	return &best
}
