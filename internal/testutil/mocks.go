package testutil

import (
	"gireporter/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock for ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(chatID, name string) error {
	args := m.Called(chatID, name)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(chatID string) (bool, error) {
	args := m.Called(chatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) GetAll() ([]domain.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) GetState(userID int64) (domain.UserState, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.UserState), args.Error(1)
}

func (m *MockStateRepository) SetState(userID int64, state domain.UserState) error {
	args := m.Called(userID, state)
	return args.Error(0)
}
