package command

import (
	"fmt"

	"gireporter/internal/domain"
	"gireporter/internal/repository"
	"gireporter/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Start greets an admin, reveals their user id and shows the main
// keyboard. It also resets any in-flight flow back to idle, so /start
// doubles as an abort. Non-admins get no response at all.
type Start struct {
	states repository.StateRepository
	auth   *service.AuthService
	sender Sender
}

// NewStart creates the /start command
func NewStart(states repository.StateRepository, auth *service.AuthService, sender Sender) *Start {
	return &Start{
		states: states,
		auth:   auth,
		sender: sender,
	}
}

func (c *Start) Triggers() []string {
	return []string{"/start"}
}

func (c *Start) State() domain.UserState {
	return domain.StateIdle
}

// Execute greets the admin and resets their state
func (c *Start) Execute(msg Message) error {
	if !c.auth.IsAdmin(msg.SenderID) {
		return nil
	}

	if err := c.states.SetState(msg.SenderID, domain.StateIdle); err != nil {
		return err
	}

	text := fmt.Sprintf("Genesis hisobot вас приветствует!\nВаш user id = `%d`", msg.SenderID)
	return c.sender.Send(msg.ChatID, text, tele.ModeMarkdown, mainMenuMarkup())
}

// GetUpdate is never called: the command owns no state
func (c *Start) GetUpdate(msg Message) error {
	return nil
}

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("Добавить проект"), menu.Text("Удалить проект")),
		menu.Row(menu.Text("Мои проекты")),
	)
	return menu
}
