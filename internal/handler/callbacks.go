package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

const (
	msgWordDeleted       = "🗑 Слово удалено из вашего словаря!\n📚 У вас осталось %d слов для изучения"
	alertWordDeleted     = "✅ Слово удалено!"
	alertDeleteFailed    = "❌ Ошибка удаления!"
	deleteCallbackPrefix = "delete_word_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles all callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	// Delete buttons carry the word id in their unique; match the raw
	// data too in case the unique didn't come through
	switch {
	case strings.HasPrefix(callback.Unique, deleteCallbackPrefix):
		return h.handleDeleteWord(c, strings.TrimPrefix(callback.Unique, deleteCallbackPrefix))
	case strings.HasPrefix(data, deleteCallbackPrefix):
		return h.handleDeleteWord(c, strings.TrimPrefix(data, deleteCallbackPrefix))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleDeleteWord removes a personal word and starts a new game
func (h *Handler) handleDeleteWord(c tele.Context, idStr string) error {
	userID := c.Sender().ID

	wordID, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: alertDeleteFailed})
	}

	if err := h.wordService.DeletePersonalWord(userID, wordID); err != nil {
		// Default or non-owned words are reported, never deleted
		if !errors.Is(err, domain.ErrWordNotOwned) {
			h.logger.Error("Failed to delete personal word",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int("word_id", wordID),
			)
		}
		return c.Respond(&tele.CallbackResponse{Text: alertDeleteFailed})
	}

	count, err := h.wordService.StudiedCount(userID)
	if err != nil {
		h.logger.Error("Failed to count studied words", zap.Error(err))
	}

	if err := c.Respond(&tele.CallbackResponse{Text: alertWordDeleted}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	text := fmt.Sprintf(msgWordDeleted, count)
	if err := c.Edit(text); err != nil {
		if !strings.Contains(err.Error(), "message is not modified") {
			h.logger.Warn("Failed to edit message, sending new", zap.Error(err))
			if err := c.Send(text); err != nil {
				return err
			}
		}
	}

	return h.startNewGame(c)
}
