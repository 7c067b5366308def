package analysis

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telegram-chat-stats/internal/models"
)

func TestCalls_FilterByAction(t *testing.T) {
	messages := []models.Message{
		msgAt(1, testOwner, baseTime, "text"),
		callMsg(2, testOwner, baseTime.Add(time.Hour), 60),
		callMsg(3, testMember, baseTime.Add(2*time.Hour), 120),
	}

	calls := Calls(messages)

	require.Len(t, calls, 2)
	assert.Equal(t, int64(2), calls[0].ID)
	assert.Equal(t, int64(3), calls[1].ID)
}

func TestCallsDurations_MissingCountsAsZero(t *testing.T) {
	calls := []models.Message{
		callMsg(1, testOwner, baseTime, 90),
		callMsg(2, testOwner, baseTime.Add(time.Hour), 0),
		callMsg(3, testMember, baseTime.Add(2*time.Hour), 30),
	}

	assert.Equal(t, 120, CallsDurations(calls))
}

func TestLongestCall_FirstWinsTies(t *testing.T) {
	calls := []models.Message{
		callMsg(1, testOwner, baseTime, 120),
		callMsg(2, testMember, baseTime.Add(time.Hour), 120),
		callMsg(3, testOwner, baseTime.Add(2*time.Hour), 60),
	}

	longest := LongestCall(calls)

	require.NotNil(t, longest)
	assert.Equal(t, int64(1), longest.ID)
	assert.Equal(t, 120, longest.DurationSeconds)
}

func TestLongestCall_NoCalls(t *testing.T) {
	assert.Nil(t, LongestCall(nil))
	assert.Nil(t, LongestCall([]models.Message{callMsg(1, testOwner, baseTime, 0)}))
}

func TestOccurrences_CaseInsensitive(t *testing.T) {
	pattern := regexp.MustCompile("(?i)люблю")
	messages := []models.Message{
		msgAt(1, testOwner, baseTime, "Люблю тебя"),
		msgAt(2, testMember, baseTime.Add(time.Minute), "и я тебя люблю"),
		msgAt(3, testOwner, baseTime.Add(2*time.Minute), "спокойной ночи"),
	}

	matched := Occurrences(messages, pattern)

	require.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].ID)
	assert.Equal(t, int64(2), matched[1].ID)
}

func TestOccurrences_SearchesFragmentedText(t *testing.T) {
	msg := msgAt(1, testOwner, baseTime, "")
	msg.Text = models.FragmentedText(
		models.PlainFragment("очень "),
		models.EntityFragment("bold", "люблю"),
	)

	matched := Occurrences([]models.Message{msg}, regexp.MustCompile("(?i)люблю"))
	assert.Len(t, matched, 1)
}
