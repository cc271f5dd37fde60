package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMyChatMember reacts to the bot's own membership changes.
// When an admin promotes the bot to administrator of a chat, that admin
// gets the chat details back (the chat id is what they need to register
// the project). When a non-admin drags the bot into a group, the bot
// leaves immediately.
func (h *Handler) handleMyChatMember(c tele.Context) error {
	update := c.ChatMember()
	if update == nil || update.NewChatMember == nil {
		return nil
	}

	switch update.NewChatMember.Role {
	case tele.Left, tele.Kicked:
		return nil
	}

	senderID := update.Sender.ID

	if h.auth.IsAdmin(senderID) {
		if update.NewChatMember.Role != tele.Administrator {
			return nil
		}

		text := fmt.Sprintf(
			"Меня добавили в `%s`\nНазвание: `%s`\nID: `%d`",
			update.Chat.Type, update.Chat.Title, update.Chat.ID,
		)

		if _, err := h.bot.Send(tele.ChatID(senderID), text, tele.ModeMarkdown); err != nil {
			h.logger.Error("Failed to notify admin about membership",
				zap.Error(err),
				zap.Int64("user_id", senderID),
			)
			return err
		}
		return nil
	}

	if update.Chat.Type == tele.ChatPrivate {
		return nil
	}

	h.logger.Info("Leaving chat added by non-admin",
		zap.Int64("chat_id", update.Chat.ID),
		zap.Int64("user_id", senderID),
	)

	return h.bot.Leave(update.Chat)
}
