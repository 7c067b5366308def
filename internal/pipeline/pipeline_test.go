package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-chat-stats/internal/analysis"
	"github.com/telegram-chat-stats/internal/models"
)

// captureStore records what the pipeline hands to persistence
type captureStore struct {
	savedIDs     []int64
	reportChatID int64
	reportYear   int
	reportTotal  int
}

func (s *captureStore) SaveChat(ctx context.Context, chat *models.Chat) error {
	for i := range chat.Messages {
		s.savedIDs = append(s.savedIDs, chat.Messages[i].ID)
	}
	return nil
}

func (s *captureStore) SaveReport(ctx context.Context, chatID int64, year int, stats *models.AllStats) error {
	s.reportChatID = chatID
	s.reportYear = year
	s.reportTotal = stats.ChatStats.MessagesStats.TotalMessagesCount
	return nil
}

func writeExport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "result.json")
	doc := `{
		"name": "Dima",
		"type": "personal_chat",
		"id": 42,
		"messages": [
			{"id": 1, "type": "message", "date": "2024-03-10T18:04:12", "from_id": "user111", "text": "привет"},
			{"id": 2, "type": "message", "date": "2024-03-11T09:00:00", "from_id": "user222", "text": "привет"},
			{"id": 3, "type": "message", "date": "2023-12-31T23:00:00", "from_id": "user111", "text": "с наступающим"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRun_PersistsChatBeforeFiltering(t *testing.T) {
	dir := t.TempDir()
	cfg := &models.Config{
		InputPath:  writeExport(t, dir),
		OutputPath: filepath.Join(dir, "stats.json"),
		OwnerID:    "user111",
		Year:       2024,
	}

	store := &captureStore{}
	analyzer := analysis.New(analysis.Options{OwnerID: cfg.OwnerID}, zerolog.Nop())
	pipe := New(cfg, analyzer, store, nil, nil, zerolog.Nop())

	require.NoError(t, pipe.Run(context.Background()))

	// The database receives every loaded message, including the one the
	// report's date range drops
	assert.ElementsMatch(t, []int64{1, 2, 3}, store.savedIDs)

	assert.Equal(t, int64(42), store.reportChatID)
	assert.Equal(t, 2024, store.reportYear)
	assert.Equal(t, 2, store.reportTotal)
}

func TestRun_NoStoreConfigured(t *testing.T) {
	dir := t.TempDir()
	cfg := &models.Config{
		InputPath:  writeExport(t, dir),
		OutputPath: filepath.Join(dir, "stats.json"),
		OwnerID:    "user111",
		Year:       2024,
	}

	analyzer := analysis.New(analysis.Options{OwnerID: cfg.OwnerID}, zerolog.Nop())
	pipe := New(cfg, analyzer, nil, nil, nil, zerolog.Nop())

	require.NoError(t, pipe.Run(context.Background()))

	_, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
}
