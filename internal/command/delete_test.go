package command

import (
	"testing"

	"gireporter/internal/domain"
	"gireporter/internal/service"
	"gireporter/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newDeleteFixture(adminIDs ...int64) (*DeleteProject, *testutil.MockProjectRepository, *testutil.MockStateRepository, *testutil.RecordingSender) {
	projectRepo := new(testutil.MockProjectRepository)
	stateRepo := new(testutil.MockStateRepository)
	sender := new(testutil.RecordingSender)

	cmd := NewDeleteProject(
		service.NewProjectService(projectRepo),
		stateRepo,
		service.NewAuthService(adminIDs),
		sender,
		testutil.NewTestLogger(),
	)

	return cmd, projectRepo, stateRepo, sender
}

func TestDeleteProject_Triggers(t *testing.T) {
	cmd, _, _, _ := newDeleteFixture(1)

	assert.Equal(t, []string{"Удалить проект", "/deleteProject"}, cmd.Triggers())
}

func TestDeleteProject_Execute(t *testing.T) {
	cmd, _, stateRepo, sender := newDeleteFixture(1)

	stateRepo.On("SetState", int64(1), domain.StateDeletingProject).Return(nil)

	err := cmd.Execute(Message{SenderID: 1, ChatID: 1, Text: "Удалить проект"})

	assert.NoError(t, err)
	sent := sender.Sent()
	assert.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "chat id")
	stateRepo.AssertExpectations(t)
}

func TestDeleteProject_Execute_Unauthorized(t *testing.T) {
	cmd, _, stateRepo, sender := newDeleteFixture(1)

	err := cmd.Execute(Message{SenderID: 99, ChatID: 99, Text: "Удалить проект"})

	assert.NoError(t, err)
	assert.Empty(t, sender.Sent())
	stateRepo.AssertNotCalled(t, "SetState")
}

func TestDeleteProject_GetUpdate(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		repoDeleted   bool
		expectedReply string
	}{
		{
			name:          "existing project deleted",
			text:          "100500",
			repoDeleted:   true,
			expectedReply: "Проект удалён",
		},
		{
			name:          "missing project still resets state",
			text:          "999999",
			repoDeleted:   false,
			expectedReply: "Проект с таким chat id не найден, удалять нечего",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, projectRepo, stateRepo, sender := newDeleteFixture(1)

			projectRepo.On("Delete", tt.text).Return(tt.repoDeleted, nil)
			// Single attempt: state always resets regardless of outcome
			stateRepo.On("SetState", int64(1), domain.StateIdle).Return(nil)

			err := cmd.GetUpdate(Message{SenderID: 1, ChatID: 1, Text: tt.text})

			assert.NoError(t, err)
			sent := sender.Sent()
			assert.Len(t, sent, 1)
			assert.Equal(t, tt.expectedReply, sent[0].Text)
			projectRepo.AssertExpectations(t)
			stateRepo.AssertExpectations(t)
		})
	}
}
