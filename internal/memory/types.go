package memory

import "time"

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn as stored in history.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
	Metadata  map[string]any
}

// ContextMessage is the metadata-free view of a Message handed to the chat backend.
type ContextMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Task is an ephemeral, session-scoped task tracked alongside the conversation.
type Task struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Summary describes the live state of a session.
type Summary struct {
	SessionDuration    time.Duration `json:"session_duration"`
	MessagesExchanged  int           `json:"messages_exchanged"`
	ActiveTasks        int           `json:"active_tasks"`
	PreferencesLearned int           `json:"preferences_learned"`
}
