// Package session persists conversation state between visits: the chat
// message log, the current formation, and the navigation trail, under a
// fixed storage key with a 30-minute freshness window.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

// Role identifies a chat message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat log entry. Formation is populated on assistant
// messages that carried a result set; it is stripped before persistence and
// only the current formation survives a reload.
type Message struct {
	ID        string            `json:"id"`
	Role      Role              `json:"role"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Formation *schema.Formation `json:"formation,omitempty"`
}

// NewMessage builds a message with a fresh id.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
