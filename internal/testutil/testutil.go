package testutil

import (
	"sync"
	"time"

	"gireporter/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProject creates a test project
func NewTestProject(id int64, chatID, name string) domain.Project {
	return domain.Project{
		ID:        id,
		ChatID:    chatID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// SentMessage is one message captured by RecordingSender
type SentMessage struct {
	ChatID int64
	Text   string
	Opts   []interface{}
}

// RecordingSender captures outbound sends for assertions.
// Set Err to make every send fail.
type RecordingSender struct {
	mu       sync.Mutex
	Err      error
	Messages []SentMessage
}

func (s *RecordingSender) Send(chatID int64, text string, opts ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	s.Messages = append(s.Messages, SentMessage{
		ChatID: chatID,
		Text:   text,
		Opts:   opts,
	})
	return nil
}

// Sent returns a copy of the captured messages
func (s *RecordingSender) Sent() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SentMessage, len(s.Messages))
	copy(out, s.Messages)
	return out
}
