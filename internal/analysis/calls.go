package analysis

import (
	"regexp"

	"github.com/telegram-chat-stats/internal/models"
)

// callAction is the service-action label Telegram exports use for calls
const callAction = "phone_call"

// Calls returns the messages recording a phone call, in original order
func Calls(messages []models.Message) []models.Message {
	var calls []models.Message
	for i := range messages {
		if messages[i].Action == callAction {
			calls = append(calls, messages[i])
		}
	}
	return calls
}

// CallsDurations sums call durations in seconds; a missing duration
// counts as zero
func CallsDurations(calls []models.Message) int {
	total := 0
	for i := range calls {
		total += calls[i].DurationSeconds
	}
	return total
}

// LongestCall returns the call with the maximal duration, keeping the
// first-encountered message on ties. Returns nil when no call has a
// positive duration.
func LongestCall(calls []models.Message) *models.MinimalMessage {
	var longest *models.MinimalMessage
	maxDuration := 0

	for i := range calls {
		if calls[i].DurationSeconds > maxDuration {
			maxDuration = calls[i].DurationSeconds
			snapshot := models.NewMinimalMessage(calls[i])
			longest = &snapshot
		}
	}

	return longest
}

// Occurrences returns the messages whose extracted text matches the
// pattern, in original order
func Occurrences(messages []models.Message, pattern *regexp.Regexp) []models.Message {
	var matched []models.Message
	for i := range messages {
		if pattern.MatchString(messages[i].Text.String()) {
			matched = append(matched, messages[i])
		}
	}
	return matched
}
