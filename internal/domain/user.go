package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateCreatingProject UserState = "creating_project"
	StateDeletingProject UserState = "deleting_project"
)

// Valid reports whether the state belongs to the known set
func (s UserState) Valid() bool {
	switch s {
	case StateIdle, StateCreatingProject, StateDeletingProject:
		return true
	}
	return false
}
