package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/testutil"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestQuizService_GenerateQuestion(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
	}{
		{name: "minimum playable pool", poolSize: 4},
		{name: "larger pool", poolSize: 6},
		{name: "full pool", poolSize: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := int64(123)
			pool := testutil.DefaultWordPool(tt.poolSize)

			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("FindVisibleWords", userID).Return(pool, nil)

			svc := NewQuizService(mockRepo, newTestRand())

			q, err := svc.GenerateQuestion(userID)

			assert.NoError(t, err)
			assert.NotNil(t, q)

			// Exactly 4 options: the correct word plus 3 distractors
			assert.Len(t, q.Options, 4)

			// The correct word appears exactly once, options are distinct
			seen := make(map[int]int)
			correctCount := 0
			for _, opt := range q.Options {
				seen[opt.WordID]++
				if opt.WordID == q.Correct.WordID {
					correctCount++
				}
			}
			assert.Equal(t, 1, correctCount)
			assert.Len(t, seen, 4)

			// The prompt is the russian side of the correct word
			assert.Equal(t, q.Correct.RussianWord, q.Prompt)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuizService_GenerateQuestion_InsufficientWords(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
	}{
		{name: "empty pool", poolSize: 0},
		{name: "one word", poolSize: 1},
		{name: "three words", poolSize: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := int64(123)
			pool := testutil.DefaultWordPool(tt.poolSize)

			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("FindVisibleWords", userID).Return(pool, nil)

			svc := NewQuizService(mockRepo, newTestRand())

			q, err := svc.GenerateQuestion(userID)

			assert.ErrorIs(t, err, domain.ErrInsufficientWords)
			assert.Nil(t, q)
		})
	}
}

func TestQuizService_GenerateQuestion_RepoError(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("FindVisibleWords", userID).Return(nil, fmt.Errorf("db error"))

	svc := NewQuizService(mockRepo, newTestRand())

	q, err := svc.GenerateQuestion(userID)

	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestQuizService_GenerateQuestion_EveryWordReachable(t *testing.T) {
	// With a fixed pool, repeated calls should eventually pick every
	// word as the correct one (sampling is with replacement across calls)
	userID := int64(123)
	pool := testutil.DefaultWordPool(4)

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("FindVisibleWords", userID).Return(pool, nil)

	svc := NewQuizService(mockRepo, newTestRand())

	picked := make(map[int]bool)
	for i := 0; i < 200; i++ {
		q, err := svc.GenerateQuestion(userID)
		assert.NoError(t, err)
		picked[q.Correct.WordID] = true
	}

	assert.Len(t, picked, len(pool))
}

func TestQuizService_CheckAnswer(t *testing.T) {
	correct := testutil.NewDefaultWord(1, "Dog", "Собака")

	tests := []struct {
		name     string
		reply    string
		expected bool
	}{
		{name: "exact match", reply: "Dog", expected: true},
		{name: "wrong word", reply: "Cat", expected: false},
		{name: "case sensitive", reply: "dog", expected: false},
		{name: "russian side is not an answer", reply: "Собака", expected: false},
		{name: "empty reply", reply: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			svc := NewQuizService(mockRepo, newTestRand())

			assert.Equal(t, tt.expected, svc.CheckAnswer(tt.reply, correct))
		})
	}
}
