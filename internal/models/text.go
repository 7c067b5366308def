package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MessageText is the polymorphic text payload of a message: either a
// single plain string, or an ordered list of fragments where each
// fragment is plain text or a tagged entity carrying its own text.
// Concatenating all fragment texts in order reconstructs the message's
// effective textual content.
type MessageText struct {
	plain     string
	fragments []TextFragment
	isPlain   bool
}

// PlainText creates a MessageText holding a single plain string
func PlainText(text string) MessageText {
	return MessageText{plain: text, isPlain: true}
}

// FragmentedText creates a MessageText from an ordered list of fragments
func FragmentedText(fragments ...TextFragment) MessageText {
	return MessageText{fragments: fragments}
}

// String flattens the payload into a single string. This is the one
// text extractor every text-dependent aggregator goes through, so
// results do not depend on which representation the export used.
func (t MessageText) String() string {
	if t.isPlain {
		return t.plain
	}

	var sb strings.Builder
	for _, fragment := range t.fragments {
		sb.WriteString(fragment.Text())
	}
	return sb.String()
}

// UnmarshalJSON accepts both representations the export uses:
// a bare string or an array of fragments
func (t *MessageText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = PlainText(plain)
		return nil
	}

	var fragments []TextFragment
	if err := json.Unmarshal(data, &fragments); err != nil {
		return fmt.Errorf("text must be a string or a fragment list: %w", err)
	}
	*t = FragmentedText(fragments...)
	return nil
}

// MarshalJSON writes the payload back in its original representation
func (t MessageText) MarshalJSON() ([]byte, error) {
	if t.isPlain {
		return json.Marshal(t.plain)
	}
	if t.fragments == nil {
		return json.Marshal([]TextFragment{})
	}
	return json.Marshal(t.fragments)
}

// TextFragment is one element of a fragmented message text:
// either a plain string or a typed entity
type TextFragment struct {
	text   string
	entity *TextEntity
}

// TextEntity is a tagged span of text (mention, link, bold, ...)
type TextEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// PlainFragment creates a plain-string fragment
func PlainFragment(text string) TextFragment {
	return TextFragment{text: text}
}

// EntityFragment creates a tagged entity fragment
func EntityFragment(entityType, text string) TextFragment {
	return TextFragment{entity: &TextEntity{Type: entityType, Text: text}}
}

// Text returns the fragment's textual content regardless of its kind
func (f TextFragment) Text() string {
	if f.entity != nil {
		return f.entity.Text
	}
	return f.text
}

// UnmarshalJSON accepts a bare string or an entity object
func (f *TextFragment) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*f = PlainFragment(plain)
		return nil
	}

	var entity TextEntity
	if err := json.Unmarshal(data, &entity); err != nil {
		return fmt.Errorf("text fragment must be a string or an entity: %w", err)
	}
	f.text = ""
	f.entity = &entity
	return nil
}

// MarshalJSON writes the fragment back in its original representation
func (f TextFragment) MarshalJSON() ([]byte, error) {
	if f.entity != nil {
		return json.Marshal(f.entity)
	}
	return json.Marshal(f.text)
}
