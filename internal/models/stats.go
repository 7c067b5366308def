package models

import (
	"encoding/json"
	"time"
)

// AllStats is the complete analytics report produced for one chat
type AllStats struct {
	ChatStats             ChatStats       `json:"chat_stats"`
	Occurrences           MessagesStats   `json:"occurrences"`
	LongestConversation   MessagesStats   `json:"longest_conversation"`
	CallsStats            CallsStats      `json:"calls_stats"`
	MostUsedSticker       MostUsedSticker `json:"most_used_sticker"`
	TopEmoji              EmojiStats      `json:"top_emoji"`
	TopWords              []WordCount     `json:"top_words"`
	AverageMessagesPerDay float64         `json:"average_messages_per_day"`
	Streak                *Streak         `json:"streak"`
	Narrative             string          `json:"narrative,omitempty"`
}

// ChatStats holds chat-level message and character statistics
type ChatStats struct {
	MessagesStats           MessagesStats           `json:"messages_stats"`
	AdditionalMessagesStats AdditionalMessagesStats `json:"additional_messages_stats"`
}

// MessagesStats holds message counts partitioned by participant,
// with first/last message snapshots
type MessagesStats struct {
	FirstMessage        *MinimalMessage `json:"first_message"`
	LastMessage         *MinimalMessage `json:"last_message"`
	TotalMessagesCount  int             `json:"total_messages_count"`
	OwnerMessagesCount  int             `json:"owner_messages_count"`
	MemberMessagesCount int             `json:"member_messages_count"`
}

// AdditionalMessagesStats holds character counts partitioned by participant
type AdditionalMessagesStats struct {
	TotalCharactersCount  int `json:"total_characters_count"`
	OwnerCharactersCount  int `json:"owner_characters_count"`
	MemberCharactersCount int `json:"member_characters_count"`
}

// CallsStats summarises phone calls found in the chat
type CallsStats struct {
	TotalCallsDurationsSec int             `json:"total_calls_durations_sec"`
	TotalCallsDurationsMin int             `json:"total_calls_durations_min"`
	LongestCall            *MinimalMessage `json:"longest_call"`
}

// MostUsedSticker reports the leading sticker per participant group.
// The snapshot is the message that pushed the leader past the previous
// maximum, which is not necessarily its first occurrence.
type MostUsedSticker struct {
	OwnerMostUsedStickerCount  int             `json:"owner_most_used_sticker_count"`
	OwnerMostUsedSticker       *MinimalMessage `json:"owner_most_used_sticker"`
	MemberMostUsedStickerCount int             `json:"member_most_used_sticker_count"`
	MemberMostUsedSticker      *MinimalMessage `json:"member_most_used_sticker"`
}

// EmojiStats reports the single most frequent emoji
type EmojiStats struct {
	Emoji string `json:"emoji,omitempty"`
	Count int    `json:"count"`
}

// WordCount is one entry of the word frequency ranking
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Streak is the longest run of calendar-consecutive active days
type Streak struct {
	Count int `json:"count"`
	Start Day `json:"start"`
	End   Day `json:"end"`
}

// Day is a calendar date without a time component
type Day struct {
	time.Time
}

// NewDay truncates a timestamp to its calendar date
func NewDay(t time.Time) Day {
	year, month, day := t.Date()
	return Day{time.Date(year, month, day, 0, 0, 0, 0, t.Location())}
}

// Next returns the following calendar day
func (d Day) Next() Day {
	return Day{d.AddDate(0, 0, 1)}
}

// MarshalJSON writes the date in YYYY-MM-DD form
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON parses a YYYY-MM-DD date
func (d *Day) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// MinimalMessage is a reporting-only projection of a Message.
// It is constructed by value-copy and never mutated afterwards.
type MinimalMessage struct {
	ID              int64       `json:"id"`
	From            string      `json:"from,omitempty"`
	Type            string      `json:"type"`
	Text            MessageText `json:"text"`
	Date            ExportTime  `json:"date"`
	DurationSeconds int         `json:"duration_seconds,omitempty"`
	DiscardReason   string      `json:"discard_reason,omitempty"`
	File            string      `json:"file,omitempty"`
	MediaType       string      `json:"media_type,omitempty"`
}

// NewMinimalMessage projects a Message down to its reporting fields
func NewMinimalMessage(m Message) MinimalMessage {
	return MinimalMessage{
		ID:              m.ID,
		From:            m.From,
		Type:            m.Type,
		Text:            m.Text,
		Date:            m.Date,
		DurationSeconds: m.DurationSeconds,
		DiscardReason:   m.DiscardReason,
		File:            m.File,
		MediaType:       m.MediaType,
	}
}
