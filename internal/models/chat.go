package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// exportTimeLayout is the naive wall-clock format Telegram Desktop writes
// into the "date" field of a JSON export
const exportTimeLayout = "2006-01-02T15:04:05"

// ExportTime wraps time.Time with the export's timestamp encoding.
// A timestamp that cannot be parsed is a load-time error, never defaulted.
type ExportTime struct {
	time.Time
}

// UnmarshalJSON parses the export's naive timestamp format,
// falling back to RFC3339 for exports that carry an offset
func (t *ExportTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	if parsed, err := time.Parse(exportTimeLayout, raw); err == nil {
		t.Time = parsed
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes the timestamp back in the export's format
func (t ExportTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(exportTimeLayout))
}

// Chat represents one exported chat: header fields plus the full
// message log. The message slice is the single source of truth for an
// analytics run; aggregators read it and never mutate it.
type Chat struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Messages []Message `json:"messages"`
}

// RetainByDate drops messages outside the inclusive [start, end] range and
// sorts the remainder chronologically. This is the single destructive step
// of an analytics run and must happen before any time-windowed aggregation.
func (c *Chat) RetainByDate(start, end time.Time) {
	kept := c.Messages[:0]
	for _, msg := range c.Messages {
		if msg.Date.Before(start) || msg.Date.After(end) {
			continue
		}
		kept = append(kept, msg)
	}
	c.Messages = kept

	sort.SliceStable(c.Messages, func(i, j int) bool {
		return c.Messages[i].Date.Time.Before(c.Messages[j].Date.Time)
	})
}

// Message represents a single message from a Telegram Desktop export.
// Only the fields the analytics engine reads are typed individually;
// domain sub-structures (poll, contact, location, invoice, giveaway)
// are carried through untouched.
type Message struct {
	ID           int64       `json:"id"`
	Type         string      `json:"type"`
	Action       string      `json:"action,omitempty"`
	Date         ExportTime  `json:"date"`
	DateUnixtime string      `json:"date_unixtime,omitempty"`
	From         string      `json:"from,omitempty"`
	FromID       string      `json:"from_id,omitempty"`
	Actor        string      `json:"actor,omitempty"`
	ActorID      string      `json:"actor_id,omitempty"`
	Edited       string      `json:"edited,omitempty"`
	ReplyTo      int64       `json:"reply_to_message_id,omitempty"`
	Text         MessageText `json:"text"`

	// Media descriptors
	Photo           string `json:"photo,omitempty"`
	File            string `json:"file,omitempty"`
	FileName        string `json:"file_name,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
	MediaType       string `json:"media_type,omitempty"`
	MimeType        string `json:"mime_type,omitempty"`
	StickerEmoji    string `json:"sticker_emoji,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	DiscardReason   string `json:"discard_reason,omitempty"`

	// Opaque sub-structures, not consumed by the analytics engine
	Contact  *Contact  `json:"contact_information,omitempty"`
	Location *Location `json:"location_information,omitempty"`
	Invoice  *Invoice  `json:"invoice_information,omitempty"`
	Poll     *Poll     `json:"poll,omitempty"`
	Giveaway *Giveaway `json:"giveaway_information,omitempty"`
}

// Contact represents a shared contact card
type Contact struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number"`
}

// Location represents a shared geographic point
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Invoice represents a payment request message
type Invoice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
}

// Poll represents a poll message with its answers
type Poll struct {
	Question    string       `json:"question"`
	Closed      bool         `json:"closed"`
	TotalVoters int          `json:"total_voters"`
	Answers     []PollAnswer `json:"answers"`
}

// PollAnswer represents a single poll option
type PollAnswer struct {
	Text   string `json:"text"`
	Voters int    `json:"voters"`
	Chosen bool   `json:"chosen"`
}

// Giveaway represents a giveaway announcement
type Giveaway struct {
	Quantity  int    `json:"quantity"`
	Months    int    `json:"months"`
	UntilDate string `json:"until_date"`
}
