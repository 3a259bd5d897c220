package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/repository"
)

// MinPoolSize is the smallest visible word pool a game can be built from:
// one correct word plus three distractors.
const MinPoolSize = 4

const maxDistractors = 3

// QuizService builds multiple-choice questions from the user's
// visible word pool
type QuizService struct {
	wordRepo repository.WordRepository

	// rand.Rand is not safe for concurrent use
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService creates a new quiz service. The random source is
// injected so tests can run deterministically.
func NewQuizService(wordRepo repository.WordRepository, rng *rand.Rand) *QuizService {
	return &QuizService{
		wordRepo: wordRepo,
		rng:      rng,
	}
}

// GenerateQuestion produces a fresh question for the user: a uniformly
// chosen correct word, up to three distinct distractors from the rest
// of the pool and a shuffled option list. Every call is independent;
// the same correct word may repeat across calls.
func (s *QuizService) GenerateQuestion(userID int64) (*domain.Question, error) {
	pool, err := s.wordRepo.FindVisibleWords(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch visible words: %w", err)
	}

	if len(pool) < MinPoolSize {
		return nil, domain.ErrInsufficientWords
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	correct := pool[s.rng.Intn(len(pool))]

	// Distractors are sampled without replacement from the rest of the pool
	rest := make([]domain.Word, 0, len(pool)-1)
	for _, w := range pool {
		if w.WordID != correct.WordID {
			rest = append(rest, w)
		}
	}
	s.shuffle(rest)

	count := maxDistractors
	if count > len(rest) {
		count = len(rest)
	}

	options := append([]domain.Word{correct}, rest[:count]...)
	s.shuffle(options)

	return &domain.Question{
		Correct: correct,
		Options: options,
		Prompt:  correct.RussianWord,
	}, nil
}

// CheckAnswer reports whether the reply matches the correct word.
// The match is exact and case-sensitive, as stored.
func (s *QuizService) CheckAnswer(reply string, correct domain.Word) bool {
	return reply == correct.EnglishWord
}

// shuffle permutes words in place using Fisher-Yates.
// Caller must hold s.mu.
func (s *QuizService) shuffle(words []domain.Word) {
	for i := len(words) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}
