package handler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/service"
	"github.com/sevirov89/DataBaseBot/internal/session"
)

const (
	msgEnterEnglish    = "📝 Введите английское слово, которое хотите добавить:"
	msgEnterRussian    = "✅ Английское слово: %s\n📝 Теперь введите русский перевод:"
	msgAddCancelled    = "❌ Добавление слова отменено."
	msgWordAdded       = "🎉 Слово добавлено!\n🇬🇧 %s - 🇷🇺 %s\n📚 У вас теперь %d слов для изучения"
	msgWordExists      = "❌ Ошибка при добавлении слова. Возможно, такое слово уже существует."
	msgAddFailed       = "❌ Не удалось сохранить слово. Попробуйте ещё раз."
	msgNoPersonalWords = "❌ У вас нет персональных слов для удаления."
	msgChooseToDelete  = "🗑 Выберите слово для удаления:"
)

// promptEnglishWord starts the add-word flow
func (h *Handler) promptEnglishWord(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.Clear(userID)
	h.sessions.SetState(userID, session.StateWaitingEnglish)

	return c.Send(msgEnterEnglish, cancelKeyboard())
}

// handleEnglishInput stores the english word and asks for the translation
func (h *Handler) handleEnglishInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	if isCancel(text) {
		h.sessions.Clear(userID)
		if err := c.Send(msgAddCancelled); err != nil {
			return err
		}
		return h.startNewGame(c)
	}

	// Store and echo the normalized form so the confirmation matches
	// what the quiz keyboard will later show
	english := service.NormalizeWord(text)

	h.sessions.PutEnglishWord(userID, english)
	h.sessions.SetState(userID, session.StateWaitingRussian)

	return c.Send(fmt.Sprintf(msgEnterRussian, english), cancelKeyboard())
}

// handleRussianInput completes the add-word flow and starts a new game
func (h *Handler) handleRussianInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	if isCancel(text) {
		h.sessions.Clear(userID)
		if err := c.Send(msgAddCancelled); err != nil {
			return err
		}
		return h.startNewGame(c)
	}

	english, ok := h.sessions.EnglishWord(userID)
	russian := service.NormalizeWord(text)
	h.sessions.Clear(userID)

	if !ok {
		// Pending word was lost, restart the conversation
		h.logger.Warn("English word payload missing",
			zap.Int64("user_id", userID),
			zap.Error(domain.ErrStateLost),
		)
		if err := c.Send(msgAddFailed); err != nil {
			return err
		}
		return h.startNewGame(c)
	}

	if err := h.wordService.AddPersonalWord(userID, english, russian); err != nil {
		var msg string
		if errors.Is(err, domain.ErrDuplicateWord) {
			msg = msgWordExists
		} else {
			h.logger.Error("Failed to add personal word",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			msg = msgAddFailed
		}
		if err := c.Send(msg); err != nil {
			return err
		}
		return h.startNewGame(c)
	}

	count, err := h.wordService.StudiedCount(userID)
	if err != nil {
		h.logger.Error("Failed to count studied words", zap.Error(err))
	}

	if err := c.Send(fmt.Sprintf(msgWordAdded, english, russian, count)); err != nil {
		return err
	}
	return h.startNewGame(c)
}

// showDeleteKeyboard lists the user's personal words as inline buttons
func (h *Handler) showDeleteKeyboard(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.wordService.PersonalWords(userID)
	if err != nil {
		h.logger.Error("Failed to get personal words", zap.Error(err))
		return c.Send(msgTryLater, mainKeyboard())
	}

	if len(words) == 0 {
		return c.Send(msgNoPersonalWords, mainKeyboard())
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words))
	for _, w := range words {
		btnText := fmt.Sprintf("🗑 %s - %s", w.EnglishWord, w.RussianWord)
		btn := markup.Data(btnText, fmt.Sprintf("delete_word_%d", w.WordID))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	return c.Send(msgChooseToDelete, markup)
}
