package analysis

import "github.com/telegram-chat-stats/internal/models"

// MessageFilter is a predicate over a single message
type MessageFilter func(*models.Message) bool

// FromOwner returns a predicate matching messages sent by the configured
// owner participant. Service messages carry no sender and match neither
// group.
func FromOwner(ownerID string) MessageFilter {
	return func(m *models.Message) bool {
		return m.FromID != "" && m.FromID == ownerID
	}
}

// FromMember returns a predicate matching messages sent by any
// participant other than the owner
func FromMember(ownerID string) MessageFilter {
	return func(m *models.Message) bool {
		return m.FromID != "" && m.FromID != ownerID
	}
}
