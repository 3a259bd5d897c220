package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/service"
	"github.com/sevirov89/DataBaseBot/internal/session"
)

// Reply keyboard button labels
const (
	btnNext       = "Дальше ⏭"
	btnAddWord    = "Добавить слово ➕"
	btnDeleteWord = "Удалить слово 🔙"
	btnCancel     = "Отмена"
)

// Common conversational messages
const (
	msgTryLater       = "Произошла ошибка. Попробуйте позже."
	msgNotEnoughWords = "❌ Недостаточно слов для игры!\nВ базе должно быть минимум 4 слова.\nДобавьте персональные слова."
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	userService *service.UserService
	wordService *service.WordService
	quizService *service.QuizService
	sessions    session.Store
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	wordService *service.WordService,
	quizService *service.QuizService,
	sessions session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		userService: userService,
		wordService: wordService,
		quizService: quizService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cards", h.handleStart)

	// Text messages (keyboard buttons, quiz answers, word input)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline delete buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// isCancel reports whether the text is the cancel word of the
// add-word flow. There is no cancel affordance while playing.
func isCancel(text string) bool {
	return strings.ToLower(strings.TrimSpace(text)) == "отмена"
}

// mainKeyboard returns the persistent main menu keyboard
func mainKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnNext)),
		menu.Row(menu.Text(btnAddWord)),
		menu.Row(menu.Text(btnDeleteWord)),
	)
	return menu
}

// gameKeyboard returns the quiz keyboard: answer options two per row,
// then the main menu buttons
func gameKeyboard(options []domain.Word) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	var rows []tele.Row
	row := tele.Row{}
	for _, w := range options {
		row = append(row, menu.Text(w.EnglishWord))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows,
		menu.Row(menu.Text(btnNext)),
		menu.Row(menu.Text(btnAddWord), menu.Text(btnDeleteWord)),
	)

	menu.Reply(rows...)
	return menu
}

// cancelKeyboard returns a keyboard with a single cancel button
func cancelKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(btnCancel)))
	return menu
}
