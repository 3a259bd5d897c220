package testutil

import (
	"time"

	"go.uber.org/zap"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username, firstName string) *domain.User {
	return &domain.User{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		CreatedAt: time.Now(),
	}
}

// NewDefaultWord creates a default word visible to every user
func NewDefaultWord(id int, english, russian string) domain.Word {
	return domain.Word{
		WordID:      id,
		EnglishWord: english,
		RussianWord: russian,
		IsDefault:   true,
		CreatedAt:   time.Now(),
	}
}

// NewPersonalWord creates a personal word owned by the given user
func NewPersonalWord(id int, ownerID int64, english, russian string) domain.Word {
	return domain.Word{
		WordID:      id,
		EnglishWord: english,
		RussianWord: russian,
		IsDefault:   false,
		CreatedBy:   &ownerID,
		CreatedAt:   time.Now(),
	}
}

// DefaultWordPool returns a pool of default words of the given size
func DefaultWordPool(size int) []domain.Word {
	pairs := [][2]string{
		{"Dog", "Собака"},
		{"Cat", "Кот"},
		{"Sun", "Солнце"},
		{"Tree", "Дерево"},
		{"House", "Дом"},
		{"Water", "Вода"},
		{"Book", "Книга"},
		{"Sky", "Небо"},
	}

	if size > len(pairs) {
		size = len(pairs)
	}

	words := make([]domain.Word, 0, size)
	for i := 0; i < size; i++ {
		words = append(words, NewDefaultWord(i+1, pairs[i][0], pairs[i][1]))
	}
	return words
}
