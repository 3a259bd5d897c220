package service

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/repository"
)

// WordService handles the user's personal dictionary
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// AddPersonalWord creates a personal word visible only to its creator.
// Input is normalized before storing. The word row and its ownership
// link are written in one transaction. A word the user already has is
// rejected with domain.ErrDuplicateWord.
func (s *WordService) AddPersonalWord(userID int64, english, russian string) error {
	english = NormalizeWord(english)
	russian = NormalizeWord(russian)

	if english == "" || russian == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}

	if _, err := s.wordRepo.AddPersonalWord(english, russian, userID); err != nil {
		return err
	}

	s.logger.Info("Personal word added",
		zap.Int64("user_id", userID),
		zap.String("english_word", english),
	)
	return nil
}

// DeletePersonalWord removes a personal word together with its
// ownership link in one transaction. Only the creator can delete a
// word; default and non-owned words are rejected with
// domain.ErrWordNotOwned and other users are never affected.
func (s *WordService) DeletePersonalWord(userID int64, wordID int) error {
	deleted, err := s.wordRepo.DeleteOwnedWord(wordID, userID)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if !deleted {
		return domain.ErrWordNotOwned
	}

	s.logger.Info("Personal word deleted",
		zap.Int64("user_id", userID),
		zap.Int("word_id", wordID),
	)
	return nil
}

// PersonalWords returns the user's own words for the delete keyboard
func (s *WordService) PersonalWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.GetPersonalWords(userID)
}

// StudiedCount returns how many words the user currently studies
func (s *WordService) StudiedCount(userID int64) (int, error) {
	return s.wordRepo.CountVisibleWords(userID)
}

// NormalizeWord trims the input and capitalizes the first letter of
// every word, lowering the rest, so "  cAT " and "cat" collapse to the
// same stored form. Handlers echo the normalized form so confirmations
// match what the quiz keyboard will later show.
func NormalizeWord(s string) string {
	return titleCase(strings.TrimSpace(s))
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToTitle(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
