package analysis

import (
	"strings"

	"github.com/telegram-chat-stats/internal/models"
)

// stickerMediaType is the media-type tag stickers carry in exports
const stickerMediaType = "sticker"

// MostUsedSticker counts repeated sticker usage among messages matching
// the filter and returns the leading count together with a snapshot of
// the message that set it. The sticker identity key is the file
// reference unless it starts with the not-exported placeholder, in
// which case the declared file name is used; messages with neither are
// skipped. Later equal counts do not replace an established leader.
func MostUsedSticker(messages []models.Message, filter MessageFilter, placeholder string) (int, *models.MinimalMessage) {
	var leader *models.MinimalMessage
	maxUsed := 0
	usage := make(map[string]int)

	for i := range messages {
		msg := &messages[i]
		if msg.MediaType != stickerMediaType || !filter(msg) {
			continue
		}

		key := msg.File
		if key == "" || (placeholder != "" && strings.HasPrefix(key, placeholder)) {
			key = msg.FileName
		}
		if key == "" {
			continue
		}

		usage[key]++
		if usage[key] > maxUsed {
			maxUsed = usage[key]
			snapshot := models.NewMinimalMessage(*msg)
			leader = &snapshot
		}
	}

	return maxUsed, leader
}
