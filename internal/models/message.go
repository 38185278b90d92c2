// ABOUTME: Message represents a single role-tagged turn in a conversation log
// ABOUTME: Core data structure for the inquiry refinement system
package models

import (
	"github.com/google/uuid"
)

// Role identifies who produced a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. Immutable once created.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant-role message
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewConversationID mints an opaque conversation identifier
func NewConversationID() string {
	return uuid.New().String()
}

// CloneLog returns an independent copy of a message log so callers can
// append without mutating the stored version.
func CloneLog(log []Message) []Message {
	out := make([]Message, len(log))
	copy(out, log)
	return out
}
