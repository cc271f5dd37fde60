package command

import (
	"fmt"
	"strings"

	"gireporter/internal/domain"
	"gireporter/internal/service"

	tele "gopkg.in/telebot.v3"
)

const msgNoProjects = "Проектов не найдено!"

// ListProjects is a single-shot command: it renders all registered
// projects immediately and owns no state.
type ListProjects struct {
	projects *service.ProjectService
	auth     *service.AuthService
	sender   Sender
}

// NewListProjects creates the "my projects" command
func NewListProjects(projects *service.ProjectService, auth *service.AuthService, sender Sender) *ListProjects {
	return &ListProjects{
		projects: projects,
		auth:     auth,
		sender:   sender,
	}
}

func (c *ListProjects) Triggers() []string {
	return []string{"Мои проекты"}
}

func (c *ListProjects) State() domain.UserState {
	return domain.StateIdle
}

// Execute sends the monospace project listing in insertion order
func (c *ListProjects) Execute(msg Message) error {
	if !c.auth.IsAdmin(msg.SenderID) {
		return nil
	}

	projects, err := c.projects.List()
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		return c.sender.Send(msg.ChatID, msgNoProjects)
	}

	return c.sender.Send(msg.ChatID, renderProjects(projects), tele.ModeMarkdown)
}

// GetUpdate is never called: the command owns no state
func (c *ListProjects) GetUpdate(msg Message) error {
	return nil
}

// renderProjects formats projects as a monospace chatId:name block
func renderProjects(projects []domain.Project) string {
	var b strings.Builder
	b.WriteString("Ваши проекты: ```\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "%s:%s\n", p.ChatID, p.Name)
	}
	b.WriteString("```")
	return b.String()
}
