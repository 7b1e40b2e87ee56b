package model

import "time"

// Turn roles. Alternation between them is intended but never enforced:
// a failed generation may leave consecutive user turns in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TimestampLayout is the wall-clock format attached to every turn.
const TimestampLayout = "15:04:05"

// Turn is one message in a session. Turns are append-only; once created they
// are never mutated or removed individually.
type Turn struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// NewTurn stamps a turn with the current wall-clock time.
func NewTurn(id, role, content string) *Turn {
	return &Turn{
		ID:        id,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

// Session stores the per-user selections of one conversation. The transcript
// itself lives in the turns table and is returned via FullSession.
type Session struct {
	ID              string    `json:"id"`
	SelectedModel   string    `json:"selected_model"`
	DocumentContext string    `json:"document_context"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FullSession includes the session metadata and its ordered transcript.
type FullSession struct {
	Session
	Turns []Turn `json:"turns"`
}

// Stats is the session statistics tuple shown by the host UI.
// AssistantCount is derived by subtraction, so a non-alternating transcript
// still sums correctly.
type Stats struct {
	Total          int `json:"total"`
	UserCount      int `json:"user_count"`
	AssistantCount int `json:"assistant_count"`
}

// Catalog is the transient model catalog, recomputed on every request.
// When the inference service is unreachable or reports no models, Models
// holds the static fallback list and Fallback is true.
type Catalog struct {
	Running  bool     `json:"running"`
	Models   []string `json:"models"`
	Fallback bool     `json:"fallback"`
}
