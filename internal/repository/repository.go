package repository

import (
	"github.com/sevirov89/DataBaseBot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	UpsertUser(userID int64, username, firstName string) error
}

// WordRepository defines word data operations
type WordRepository interface {
	// FindVisibleWords returns all default words plus the user's
	// personal words, deduplicated by word id.
	FindVisibleWords(userID int64) ([]domain.Word, error)
	CountVisibleWords(userID int64) (int, error)
	GetPersonalWords(userID int64) ([]domain.Word, error)

	// AddPersonalWord creates a non-default word owned by ownerID and
	// its ownership link in one transaction, returning the word id.
	// A failure leaves no orphaned word row behind. Duplicates map to
	// domain.ErrDuplicateWord.
	AddPersonalWord(english, russian string, ownerID int64) (int, error)

	// DeleteOwnedWord removes the ownership link and the word row in
	// one transaction, but only when the word is a personal word
	// created by userID. Reports whether the word was actually
	// deleted; default and non-owned words are never touched.
	DeleteOwnedWord(wordID int, userID int64) (bool, error)
}
