package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DateRangeFromYear(t *testing.T) {
	cfg := &Config{Year: 2024}

	start, end, err := cfg.DateRange()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestConfig_DateRangeExplicit(t *testing.T) {
	cfg := &Config{Year: 2024, StartDate: "2024-03-01", EndDate: "2024-03-31"}

	start, end, err := cfg.DateRange()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	// End of the last day is included
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestConfig_DateRangeInvalid(t *testing.T) {
	_, _, err := (&Config{StartDate: "bogus", EndDate: "2024-03-31"}).DateRange()
	assert.Error(t, err)

	_, _, err = (&Config{StartDate: "2024-04-01", EndDate: "2024-03-31"}).DateRange()
	assert.Error(t, err)
}

func TestConfig_ConversationGap(t *testing.T) {
	cfg := &Config{ConversationGapMin: 15}
	assert.Equal(t, 15*time.Minute, cfg.ConversationGap())
}
