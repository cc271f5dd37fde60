package service

import (
	"errors"
	"unicode/utf8"

	"gireporter/internal/domain"
	"gireporter/internal/repository"
)

// Minimum length of chat id and project name, in characters
const minFieldLength = 3

// User-facing outcome messages
const (
	msgProjectCreated  = "Проект создан"
	msgDuplicateChatID = "Проект с таким chat id уже существует! Введите другую..."
	msgFieldsTooShort  = "Меньше 3 символов в форматах не допускается!"
	msgProjectDeleted  = "Проект удалён"
	msgProjectNotFound = "Проект с таким chat id не найден, удалять нечего"
)

// ProjectService handles project business logic.
// Outcomes carry the user-facing message; a non-nil error always means
// an infrastructure failure, never a rule violation.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create validates and registers a new project.
// Field lengths are checked before touching storage; chat id uniqueness
// is enforced atomically by the repository.
func (s *ProjectService) Create(chatID, name string) (domain.Outcome, error) {
	if utf8.RuneCountInString(chatID) < minFieldLength || utf8.RuneCountInString(name) < minFieldLength {
		return domain.Outcome{OK: false, Message: msgFieldsTooShort}, nil
	}

	err := s.projectRepo.Create(chatID, name)
	if errors.Is(err, repository.ErrDuplicateChatID) {
		return domain.Outcome{OK: false, Message: msgDuplicateChatID}, nil
	}
	if err != nil {
		return domain.Outcome{}, err
	}

	return domain.Outcome{OK: true, Message: msgProjectCreated}, nil
}

// Delete removes a project by chat id. Deleting a missing project is a
// successful no-op, so the operation is idempotent.
func (s *ProjectService) Delete(chatID string) (domain.Outcome, error) {
	deleted, err := s.projectRepo.Delete(chatID)
	if err != nil {
		return domain.Outcome{}, err
	}

	if !deleted {
		return domain.Outcome{OK: true, Message: msgProjectNotFound}, nil
	}

	return domain.Outcome{OK: true, Message: msgProjectDeleted}, nil
}

// List returns all projects in insertion order
func (s *ProjectService) List() ([]domain.Project, error) {
	return s.projectRepo.GetAll()
}
