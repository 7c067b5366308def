package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadChat_ValidExport(t *testing.T) {
	path := writeExport(t, `{
		"name": "Dima",
		"type": "personal_chat",
		"id": 42,
		"messages": [
			{
				"id": 1,
				"type": "message",
				"date": "2024-03-10T18:04:12",
				"from": "Dima",
				"from_id": "user111",
				"text": "привет"
			},
			{
				"id": 2,
				"type": "message",
				"date": "2024-03-10T18:05:00",
				"from": "Оля",
				"from_id": "user222",
				"text": ["смотри ", {"type": "link", "text": "https://example.com"}]
			}
		]
	}`)

	chat, err := LoadChat(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, int64(42), chat.ID)
	assert.Equal(t, "Dima", chat.Name)
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, "привет", chat.Messages[0].Text.String())
	assert.Equal(t, "смотри https://example.com", chat.Messages[1].Text.String())
	assert.Equal(t, 2024, chat.Messages[0].Date.Year())
}

func TestLoadChat_MissingFile(t *testing.T) {
	_, err := LoadChat(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open export file")
}

func TestLoadChat_MalformedJSON(t *testing.T) {
	path := writeExport(t, `{"name": "Dima", "messages": [`)

	_, err := LoadChat(path, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse export JSON")
}

func TestLoadChat_MissingRequiredFields(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want string
	}{
		"no id": {
			doc:  `{"id": 42, "messages": [{"type": "message", "date": "2024-03-10T18:04:12", "text": ""}]}`,
			want: "has no id",
		},
		"no type": {
			doc:  `{"id": 42, "messages": [{"id": 1, "date": "2024-03-10T18:04:12", "text": ""}]}`,
			want: "has no type",
		},
		"no date": {
			doc:  `{"id": 42, "messages": [{"id": 1, "type": "message", "text": ""}]}`,
			want: "has no date",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeExport(t, tc.doc)

			_, err := LoadChat(path, zerolog.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadChat_MalformedDateIsLoadError(t *testing.T) {
	path := writeExport(t, `{
		"name": "Dima",
		"id": 42,
		"messages": [
			{"id": 1, "type": "message", "date": "not-a-date", "text": ""}
		]
	}`)

	_, err := LoadChat(path, zerolog.Nop())
	require.Error(t, err)
}
