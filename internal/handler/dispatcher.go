package handler

import (
	"fmt"
	"strings"
	"sync"

	"gireporter/internal/command"
	"gireporter/internal/domain"
	"gireporter/internal/repository"
	"gireporter/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgCommandNotFound = "Команда не найдена\nВаш user id = `%d`"

// Dispatcher routes each inbound text message to the right command.
//
// Routing order: an exact trigger-phrase match always wins and invokes
// that command's entry phase, even if another command is in progress
// (the partial flow is simply overwritten). Otherwise the message is
// treated as a continuation of whichever command owns the sender's
// current state. Anything else falls through to a "command not found"
// reply for admins and silence for everyone else.
type Dispatcher struct {
	byTrigger map[string]command.Command
	byState   map[domain.UserState]command.Command
	states    repository.StateRepository
	auth      *service.AuthService
	sender    command.Sender
	logger    *zap.Logger

	// Per-user locks serializing fetch-state → dispatch, so two
	// concurrent messages from the same user cannot race on state
	lockMu    sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewDispatcher builds the command registry once at startup.
// A trigger phrase or a non-idle state registered twice is a
// programming error and fails construction.
func NewDispatcher(
	states repository.StateRepository,
	auth *service.AuthService,
	sender command.Sender,
	logger *zap.Logger,
	commands ...command.Command,
) (*Dispatcher, error) {
	byTrigger := make(map[string]command.Command)
	byState := make(map[domain.UserState]command.Command)

	for _, cmd := range commands {
		for _, trigger := range cmd.Triggers() {
			if _, exists := byTrigger[trigger]; exists {
				return nil, fmt.Errorf("duplicate trigger phrase %q", trigger)
			}
			byTrigger[trigger] = cmd
		}

		if state := cmd.State(); state != domain.StateIdle {
			if _, exists := byState[state]; exists {
				return nil, fmt.Errorf("duplicate command state %q", state)
			}
			byState[state] = cmd
		}
	}

	return &Dispatcher{
		byTrigger: byTrigger,
		byState:   byState,
		states:    states,
		auth:      auth,
		sender:    sender,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}, nil
}

// Dispatch routes one inbound message. Returned errors are
// infrastructure failures; rule violations are reported to the user
// by the commands themselves and are not errors here.
func (d *Dispatcher) Dispatch(msg command.Message) error {
	lock := d.userLock(msg.SenderID)
	lock.Lock()
	defer lock.Unlock()

	text := strings.TrimSpace(msg.Text)

	// Trigger match pre-empts any in-progress flow
	if cmd, ok := d.byTrigger[text]; ok {
		return cmd.Execute(msg)
	}

	state, err := d.states.GetState(msg.SenderID)
	if err != nil {
		return fmt.Errorf("get state for user %d: %w", msg.SenderID, err)
	}

	if state != domain.StateIdle {
		cmd, ok := d.byState[state]
		if !ok {
			// Stored state outside the known set is a defect, not a
			// runtime case: log and swallow the message
			d.logger.Error("No command owns stored state",
				zap.Int64("user_id", msg.SenderID),
				zap.String("state", string(state)),
			)
			return nil
		}

		if !d.auth.IsAdmin(msg.SenderID) {
			return nil
		}

		return cmd.GetUpdate(msg)
	}

	// Idle and unrecognized: admins get an explicit fallback
	if !d.auth.IsAdmin(msg.SenderID) {
		return nil
	}

	return d.sender.Send(msg.ChatID, fmt.Sprintf(msgCommandNotFound, msg.SenderID), tele.ModeMarkdown)
}

// userLock returns the mutex serializing this user's messages
func (d *Dispatcher) userLock(userID int64) *sync.Mutex {
	d.lockMu.Lock()
	defer d.lockMu.Unlock()

	lock, ok := d.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		d.userLocks[userID] = lock
	}
	return lock
}
