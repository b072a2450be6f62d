// Package models defines the data types shared by the chat loop and its renderer.
package models

// Origin identifies who authored a chat message
type Origin int

const (
	OriginUser Origin = iota
	OriginAssistant
)

// String returns the origin name
func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Label returns the row label the origin is rendered with
func (o Origin) Label() string {
	if o == OriginAssistant {
		return "Assistant: "
	}
	return "You: "
}

// Message represents a chat message for TUI display. Messages are values
// and are never modified after they enter the history.
type Message struct {
	Origin  Origin
	Content string
}

// NewUserMessage creates a message authored by the user
func NewUserMessage(content string) Message {
	return Message{Origin: OriginUser, Content: content}
}

// NewAssistantMessage creates a message authored by the assistant. Key
// handling never produces one; it is how replies enter a history so the
// renderer draws them under the "Assistant: " label.
func NewAssistantMessage(content string) Message {
	return Message{Origin: OriginAssistant, Content: content}
}
