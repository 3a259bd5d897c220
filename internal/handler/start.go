package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgWelcome = "👋 Привет! Я бот EnglishCard, помогу тебе учить английские слова.\n\n" +
	"🎯 Угадывай перевод слова из четырёх вариантов.\n" +
	"➕ Добавляй собственные слова — их видишь только ты.\n" +
	"🗑 Удаляй свои слова, когда они выучены.\n\n" +
	"Начинаем!"

// handleStart handles /start and /cards commands
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	if err := h.userService.RegisterUser(sender.ID, sender.Username, sender.FirstName); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send(msgTryLater)
	}

	h.sessions.Clear(sender.ID)

	if err := c.Send(msgWelcome); err != nil {
		return err
	}

	return h.startNewGame(c)
}
