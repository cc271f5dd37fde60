package command

import (
	"strings"

	"gireporter/internal/domain"
	"gireporter/internal/repository"
	"gireporter/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgDeletePrompt = "Отправьте мне chat id проекта которую хотите удалить."

// DeleteProject removes a project by chat id. Unlike create, the
// continuation is single-attempt: whatever the outcome, the user is
// reset to idle. Deleting a missing chat id is a successful no-op.
type DeleteProject struct {
	projects *service.ProjectService
	states   repository.StateRepository
	auth     *service.AuthService
	sender   Sender
	logger   *zap.Logger
}

// NewDeleteProject creates the "delete project" command
func NewDeleteProject(
	projects *service.ProjectService,
	states repository.StateRepository,
	auth *service.AuthService,
	sender Sender,
	logger *zap.Logger,
) *DeleteProject {
	return &DeleteProject{
		projects: projects,
		states:   states,
		auth:     auth,
		sender:   sender,
		logger:   logger,
	}
}

func (c *DeleteProject) Triggers() []string {
	return []string{"Удалить проект", "/deleteProject"}
}

func (c *DeleteProject) State() domain.UserState {
	return domain.StateDeletingProject
}

// Execute prompts for the chat id to delete. Non-admins get no response.
func (c *DeleteProject) Execute(msg Message) error {
	if !c.auth.IsAdmin(msg.SenderID) {
		return nil
	}

	if err := c.states.SetState(msg.SenderID, domain.StateDeletingProject); err != nil {
		return err
	}

	return c.sender.Send(msg.ChatID, msgDeletePrompt)
}

// GetUpdate consumes the chat id reply and always resets to idle
func (c *DeleteProject) GetUpdate(msg Message) error {
	chatID := strings.TrimSpace(msg.Text)

	outcome, err := c.projects.Delete(chatID)
	if err != nil {
		return err
	}

	if err := c.states.SetState(msg.SenderID, domain.StateIdle); err != nil {
		return err
	}

	c.logger.Info("Project delete processed",
		zap.Int64("user_id", msg.SenderID),
		zap.String("chat_id", chatID),
	)

	return c.sender.Send(msg.ChatID, outcome.Message, tele.ModeMarkdown)
}
