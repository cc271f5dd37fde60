package command

import (
	"strings"
	"testing"

	"gireporter/internal/domain"
	"gireporter/internal/service"
	"gireporter/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newListFixture(adminIDs ...int64) (*ListProjects, *testutil.MockProjectRepository, *testutil.RecordingSender) {
	projectRepo := new(testutil.MockProjectRepository)
	sender := new(testutil.RecordingSender)

	cmd := NewListProjects(
		service.NewProjectService(projectRepo),
		service.NewAuthService(adminIDs),
		sender,
	)

	return cmd, projectRepo, sender
}

func TestListProjects_Execute(t *testing.T) {
	cmd, projectRepo, sender := newListFixture(1)

	projectRepo.On("GetAll").Return([]domain.Project{
		testutil.NewTestProject(1, "100", "Alpha"),
		testutil.NewTestProject(2, "200", "Beta"),
	}, nil)

	err := cmd.Execute(Message{SenderID: 1, ChatID: 1, Text: "Мои проекты"})

	assert.NoError(t, err)
	sent := sender.Sent()
	assert.Len(t, sent, 1)

	// Insertion order is preserved in the rendered listing
	text := sent[0].Text
	assert.Contains(t, text, "100:Alpha")
	assert.Contains(t, text, "200:Beta")
	assert.Less(t, strings.Index(text, "100:Alpha"), strings.Index(text, "200:Beta"))
	projectRepo.AssertExpectations(t)
}

func TestListProjects_Execute_Empty(t *testing.T) {
	cmd, projectRepo, sender := newListFixture(1)

	projectRepo.On("GetAll").Return([]domain.Project{}, nil)

	err := cmd.Execute(Message{SenderID: 1, ChatID: 1, Text: "Мои проекты"})

	assert.NoError(t, err)
	sent := sender.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, "Проектов не найдено!", sent[0].Text)
}

func TestListProjects_Execute_Unauthorized(t *testing.T) {
	cmd, projectRepo, sender := newListFixture(1)

	err := cmd.Execute(Message{SenderID: 99, ChatID: 99, Text: "Мои проекты"})

	assert.NoError(t, err)
	assert.Empty(t, sender.Sent())
	projectRepo.AssertNotCalled(t, "GetAll")
}

func TestListProjects_OwnsNoState(t *testing.T) {
	cmd, _, _ := newListFixture(1)

	assert.Equal(t, domain.StateIdle, cmd.State())
	assert.NoError(t, cmd.GetUpdate(Message{SenderID: 1, ChatID: 1, Text: "anything"}))
}
