package command

import "gireporter/internal/domain"

// Message is the slice of an inbound chat event the commands act on
type Message struct {
	SenderID int64
	ChatID   int64
	Text     string
}

// Sender delivers outbound messages to a chat. Sends are
// fire-and-forget with respect to state transitions: a failed send
// never rolls back a committed state change.
type Sender interface {
	Send(chatID int64, text string, opts ...interface{}) error
}

// Command is a named bot action with a two-phase protocol.
//
// Execute is the entry phase: it checks authorization, prompts the user
// and moves them into the command's owned state. Unauthorized senders
// get no response at all. GetUpdate is the continuation phase, invoked
// only while the sender's state equals State(); it validates the
// follow-up message, performs the action and transitions the state.
// Single-shot commands own no state (State() returns StateIdle) and
// never receive GetUpdate calls.
type Command interface {
	Triggers() []string
	State() domain.UserState
	Execute(msg Message) error
	GetUpdate(msg Message) error
}
