package command

import (
	"strings"

	"gireporter/internal/domain"
	"gireporter/internal/repository"
	"gireporter/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgCreatePrompt    = "Пришлите chatId и название проекта в таком формате:\n\nchatId:название_проекта"
	msgCreateBadFormat = "Не верный формат введите заново!"
)

// CreateProject registers a new project in two steps: the trigger
// prompts for a chatId:name line, the continuation parses and creates.
// Any failed attempt (bad format, duplicate chat id, short fields)
// keeps the user in the creating state so the corrected line can simply
// be resent; only a successful create resets to idle.
type CreateProject struct {
	projects *service.ProjectService
	states   repository.StateRepository
	auth     *service.AuthService
	sender   Sender
	logger   *zap.Logger
}

// NewCreateProject creates the "add project" command
func NewCreateProject(
	projects *service.ProjectService,
	states repository.StateRepository,
	auth *service.AuthService,
	sender Sender,
	logger *zap.Logger,
) *CreateProject {
	return &CreateProject{
		projects: projects,
		states:   states,
		auth:     auth,
		sender:   sender,
		logger:   logger,
	}
}

func (c *CreateProject) Triggers() []string {
	return []string{"Добавить проект"}
}

func (c *CreateProject) State() domain.UserState {
	return domain.StateCreatingProject
}

// Execute prompts for the project line and moves the sender into the
// creating state. Non-admins get no response.
func (c *CreateProject) Execute(msg Message) error {
	if !c.auth.IsAdmin(msg.SenderID) {
		return nil
	}

	if err := c.states.SetState(msg.SenderID, domain.StateCreatingProject); err != nil {
		return err
	}

	return c.sender.Send(msg.ChatID, msgCreatePrompt)
}

// GetUpdate consumes the chatId:name reply
func (c *CreateProject) GetUpdate(msg Message) error {
	parts := strings.Split(strings.TrimSpace(msg.Text), ":")
	if len(parts) != 2 {
		// State retained: the user retries with a corrected line
		return c.sender.Send(msg.ChatID, msgCreateBadFormat)
	}

	outcome, err := c.projects.Create(parts[0], parts[1])
	if err != nil {
		return err
	}

	if !outcome.OK {
		// Recoverable rule violation, state retained
		return c.sender.Send(msg.ChatID, outcome.Message, tele.ModeMarkdown)
	}

	if err := c.states.SetState(msg.SenderID, domain.StateIdle); err != nil {
		return err
	}

	c.logger.Info("Project created",
		zap.Int64("user_id", msg.SenderID),
		zap.String("chat_id", parts[0]),
		zap.String("name", parts[1]),
	)

	return c.sender.Send(msg.ChatID, outcome.Message, tele.ModeMarkdown)
}
