package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telegram-chat-stats/internal/models"
)

const placeholder = "(File not included"

func TestMostUsedSticker_OwnerLeader(t *testing.T) {
	messages := []models.Message{
		stickerMsg(1, testOwner, "stickers/a.webp", "a.webp", baseTime),
		stickerMsg(2, testOwner, "stickers/b.webp", "b.webp", baseTime.Add(time.Minute)),
		stickerMsg(3, testOwner, "stickers/a.webp", "a.webp", baseTime.Add(2*time.Minute)),
		stickerMsg(4, testOwner, "stickers/a.webp", "a.webp", baseTime.Add(3*time.Minute)),
	}

	count, leader := MostUsedSticker(messages, FromOwner(testOwner), placeholder)

	assert.Equal(t, 3, count)
	require.NotNil(t, leader)
	assert.Equal(t, "stickers/a.webp", leader.File)
	// The snapshot is the message that pushed the count past the maximum
	assert.Equal(t, int64(4), leader.ID)
}

func TestMostUsedSticker_NoQualifyingStickers(t *testing.T) {
	messages := []models.Message{
		stickerMsg(1, testOwner, "stickers/a.webp", "a.webp", baseTime),
	}

	count, leader := MostUsedSticker(messages, FromMember(testOwner), placeholder)

	assert.Zero(t, count)
	assert.Nil(t, leader)
}

func TestMostUsedSticker_PlaceholderFallsBackToFileName(t *testing.T) {
	messages := []models.Message{
		stickerMsg(1, testOwner, "(File not included. Change data exporting settings to download.)", "duck.tgs", baseTime),
		stickerMsg(2, testOwner, "(File not included. Change data exporting settings to download.)", "duck.tgs", baseTime.Add(time.Minute)),
	}

	count, leader := MostUsedSticker(messages, FromOwner(testOwner), placeholder)

	assert.Equal(t, 2, count)
	require.NotNil(t, leader)
}

func TestMostUsedSticker_NoIdentitySkipped(t *testing.T) {
	messages := []models.Message{
		stickerMsg(1, testOwner, "", "", baseTime),
	}

	count, leader := MostUsedSticker(messages, FromOwner(testOwner), placeholder)

	assert.Zero(t, count)
	assert.Nil(t, leader)
}

func TestMostUsedSticker_TieKeepsEarlierLeader(t *testing.T) {
	messages := []models.Message{
		stickerMsg(1, testOwner, "stickers/a.webp", "a.webp", baseTime),
		stickerMsg(2, testOwner, "stickers/b.webp", "b.webp", baseTime.Add(time.Minute)),
	}

	count, leader := MostUsedSticker(messages, FromOwner(testOwner), placeholder)

	assert.Equal(t, 1, count)
	require.NotNil(t, leader)
	assert.Equal(t, "stickers/a.webp", leader.File)
}

func TestMostUsedSticker_IgnoresNonStickers(t *testing.T) {
	photo := msgAt(1, testOwner, baseTime, "")
	photo.MediaType = "photo"
	photo.File = "photos/a.jpg"

	count, leader := MostUsedSticker([]models.Message{photo}, FromOwner(testOwner), placeholder)

	assert.Zero(t, count)
	assert.Nil(t, leader)
}
