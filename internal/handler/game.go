package handler

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/session"
)

const (
	msgQuestion      = "🎯 Выберите перевод слова:\n🇷🇺 %s"
	msgCorrectAnswer = "✅ Правильно!\n🇷🇺 %s = 🇬🇧 %s\n📚 Изучаете слов: %d"
	msgWrongAnswer   = "❌ Неправильно!\nПопробуйте угадать перевод слова: 🇷🇺 %s"
)

// handleText handles all text messages based on the user's state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (handled separately)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Menu buttons work in any state
	switch text {
	case btnNext:
		return h.startNewGame(c)
	case btnAddWord:
		return h.promptEnglishWord(c)
	case btnDeleteWord:
		return h.showDeleteKeyboard(c)
	}

	switch h.sessions.State(userID) {
	case session.StateWaitingEnglish:
		return h.handleEnglishInput(c, text)
	case session.StateWaitingRussian:
		return h.handleRussianInput(c, text)
	case session.StatePlaying:
		return h.handleAnswer(c, text)
	default:
		// Idle or unknown state: any text starts a game
		return h.startNewGame(c)
	}
}

// handleAnswer checks the reply against the stored question
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	game, ok := h.sessions.Game(userID)
	if !ok {
		// Question payload was lost, start fresh
		h.logger.Warn("Game payload missing, starting new question",
			zap.Int64("user_id", userID),
			zap.Error(domain.ErrStateLost),
		)
		return h.startNewGame(c)
	}

	if !h.quizService.CheckAnswer(text, game.Correct) {
		// Re-prompt with the same question and the same options
		return c.Send(
			fmt.Sprintf(msgWrongAnswer, game.Correct.RussianWord),
			gameKeyboard(game.Options),
		)
	}

	count, err := h.wordService.StudiedCount(userID)
	if err != nil {
		h.logger.Error("Failed to count studied words", zap.Error(err))
	}

	msg := fmt.Sprintf(msgCorrectAnswer, game.Correct.RussianWord, game.Correct.EnglishWord, count)
	if err := c.Send(msg); err != nil {
		return err
	}

	return h.startNewGame(c)
}

// startNewGame generates a question and moves the user into the
// playing state. An insufficient word pool leaves the session untouched.
func (h *Handler) startNewGame(c tele.Context) error {
	userID := c.Sender().ID

	question, err := h.quizService.GenerateQuestion(userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientWords) {
			return c.Send(msgNotEnoughWords, mainKeyboard())
		}
		h.logger.Error("Failed to generate question",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgTryLater, mainKeyboard())
	}

	h.sessions.SetState(userID, session.StatePlaying)
	h.sessions.PutGame(userID, session.Game{
		Correct: question.Correct,
		Options: question.Options,
	})

	return c.Send(
		fmt.Sprintf(msgQuestion, question.Prompt),
		gameKeyboard(question.Options),
	)
}
