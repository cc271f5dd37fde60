package postgres

import (
	"database/sql"

	"gireporter/internal/domain"
)

// StateRepo implements repository.StateRepository
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new user state repository
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// GetState returns the user's current state.
// Unseen users default to idle; no row is created on read.
func (r *StateRepo) GetState(userID int64) (domain.UserState, error) {
	var state domain.UserState
	query := `SELECT state FROM user_states WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&state)

	if err == sql.ErrNoRows {
		return domain.StateIdle, nil
	}
	if err != nil {
		return domain.StateIdle, err
	}

	return state, nil
}

// SetState stores the user's state, creating the row if needed
func (r *StateRepo) SetState(userID int64, state domain.UserState) error {
	query := `
		INSERT INTO user_states (user_id, state)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET state = $2, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, state)
	return err
}
