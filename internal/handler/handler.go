package handler

import (
	"gireporter/internal/command"
	"gireporter/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Handler wires the Telegram transport to the dispatcher
type Handler struct {
	bot        *tele.Bot
	dispatcher *Dispatcher
	auth       *service.AuthService
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, dispatcher *Dispatcher, auth *service.AuthService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		dispatcher: dispatcher,
		auth:       auth,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Slash commands go through the same dispatch path as plain text
	h.bot.Handle("/start", h.handleText)
	h.bot.Handle("/deleteProject", h.handleText)

	h.bot.Handle(tele.OnText, h.handleText)

	h.bot.Handle(tele.OnMyChatMember, h.handleMyChatMember)
}

// handleText forwards private-chat text messages to the dispatcher
func (h *Handler) handleText(c tele.Context) error {
	if c.Chat() == nil || c.Chat().Type != tele.ChatPrivate {
		return nil
	}

	msg := command.Message{
		SenderID: c.Sender().ID,
		ChatID:   c.Chat().ID,
		Text:     c.Text(),
	}

	if err := h.dispatcher.Dispatch(msg); err != nil {
		h.logger.Error("Failed to process message",
			zap.Error(err),
			zap.Int64("user_id", msg.SenderID),
		)
		if h.auth.IsAdmin(msg.SenderID) {
			return c.Send(msgInternalError)
		}
	}

	return nil
}

// telegramSender adapts the bot to the command.Sender boundary
type telegramSender struct {
	bot *tele.Bot
}

// NewTelegramSender wraps a bot as a command.Sender
func NewTelegramSender(bot *tele.Bot) command.Sender {
	return &telegramSender{bot: bot}
}

func (s *telegramSender) Send(chatID int64, text string, opts ...interface{}) error {
	_, err := s.bot.Send(tele.ChatID(chatID), text, opts...)
	return err
}
