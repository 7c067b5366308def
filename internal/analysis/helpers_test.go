package analysis

import (
	"time"

	"github.com/telegram-chat-stats/internal/models"
)

const (
	testOwner  = "user111"
	testMember = "user222"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func msgAt(id int64, fromID string, date time.Time, text string) models.Message {
	return models.Message{
		ID:     id,
		Type:   "message",
		FromID: fromID,
		Date:   models.ExportTime{Time: date},
		Text:   models.PlainText(text),
	}
}

func stickerMsg(id int64, fromID, file, fileName string, date time.Time) models.Message {
	msg := msgAt(id, fromID, date, "")
	msg.MediaType = "sticker"
	msg.File = file
	msg.FileName = fileName
	return msg
}

func callMsg(id int64, fromID string, date time.Time, durationSec int) models.Message {
	msg := msgAt(id, fromID, date, "")
	msg.Type = "service"
	msg.Action = "phone_call"
	msg.DurationSeconds = durationSec
	return msg
}
