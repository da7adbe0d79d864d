package domain

import (
	"context"
	"time"
)

// ChatRole identifies the author of a transcript message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one entry of a workroom transcript.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatSession is the ordered transcript of one workroom session. It is
// append-only within a session and persisted as a whole blob, not
// per-message.
type ChatSession struct {
	ID        string
	UserID    string
	PlanID    string
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Append adds a message to the transcript.
func (s *ChatSession) Append(role ChatRole, content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
}

// ChatSessionRepository persists workroom transcripts. Writes are
// last-write-wins; the UI is the sole writer for a session in practice.
type ChatSessionRepository interface {
	CreateSession(ctx context.Context, session *ChatSession) error
	UpdateSession(ctx context.Context, session *ChatSession) error
	GetLatestSessionByUserID(ctx context.Context, userID string) (*ChatSession, error)
}
