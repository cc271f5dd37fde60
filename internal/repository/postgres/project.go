package postgres

import (
	"database/sql"
	"errors"

	"gireporter/internal/domain"
	"gireporter/internal/repository"

	"github.com/lib/pq"
)

// Postgres error code for unique constraint violation
const uniqueViolation = pq.ErrorCode("23505")

// ProjectRepo implements repository.ProjectRepository
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create inserts a new project. Uniqueness of chat_id is enforced by the
// UNIQUE constraint, so concurrent creates with the same chat id cannot
// both succeed.
func (r *ProjectRepo) Create(chatID, name string) error {
	query := `
		INSERT INTO projects (chat_id, name)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(query, chatID, name)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicateChatID
	}

	return err
}

// Delete removes a project by chat id and reports whether a row existed
func (r *ProjectRepo) Delete(chatID string) (bool, error) {
	query := `DELETE FROM projects WHERE chat_id = $1`
	res, err := r.db.Exec(query, chatID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// GetAll returns all projects ordered by insertion (serial id)
func (r *ProjectRepo) GetAll() ([]domain.Project, error) {
	query := `
		SELECT id, chat_id, name, created_at
		FROM projects
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.ChatID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
