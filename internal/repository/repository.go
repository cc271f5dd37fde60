package repository

import (
	"errors"

	"gireporter/internal/domain"
)

// ErrDuplicateChatID is returned by Create when a project with the
// same chat id already exists
var ErrDuplicateChatID = errors.New("project with this chat id already exists")

// ProjectRepository defines project data operations
type ProjectRepository interface {
	// Create inserts a new project; returns ErrDuplicateChatID if the
	// chat id is already taken
	Create(chatID, name string) error
	// Delete removes a project by chat id; reports whether a row was
	// actually removed
	Delete(chatID string) (bool, error)
	// GetAll returns all projects in insertion order
	GetAll() ([]domain.Project, error)
}

// StateRepository defines user state operations
type StateRepository interface {
	// GetState returns the user's current state, StateIdle for unseen users
	GetState(userID int64) (domain.UserState, error)
	SetState(userID int64, state domain.UserState) error
}
