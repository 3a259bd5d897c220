package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevirov89/DataBaseBot/internal/domain"
	"github.com/sevirov89/DataBaseBot/internal/testutil"
)

func TestWordService_AddPersonalWord(t *testing.T) {
	tests := []struct {
		name          string
		english       string
		russian       string
		storedEnglish string
		storedRussian string
		addErr        error
		expectedErr   error
		expectAdd     bool
	}{
		{
			name:          "valid pair",
			english:       "Cat",
			russian:       "Кот",
			storedEnglish: "Cat",
			storedRussian: "Кот",
			expectAdd:     true,
		},
		{
			name:          "input is trimmed and title-cased",
			english:       "  cAT ",
			russian:       " кот",
			storedEnglish: "Cat",
			storedRussian: "Кот",
			expectAdd:     true,
		},
		{
			name:    "empty english",
			english: "   ",
			russian: "Кот",
		},
		{
			name:    "empty russian",
			english: "Cat",
			russian: "",
		},
		{
			name:          "duplicate word",
			english:       "Cat",
			russian:       "Кот",
			storedEnglish: "Cat",
			storedRussian: "Кот",
			addErr:        domain.ErrDuplicateWord,
			expectedErr:   domain.ErrDuplicateWord,
			expectAdd:     true,
		},
		{
			name:          "transaction failure surfaces",
			english:       "Cat",
			russian:       "Кот",
			storedEnglish: "Cat",
			storedRussian: "Кот",
			addErr:        fmt.Errorf("db error"),
			expectAdd:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := int64(123)
			mockRepo := new(testutil.MockWordRepository)

			if tt.expectAdd {
				mockRepo.On("AddPersonalWord", tt.storedEnglish, tt.storedRussian, userID).
					Return(7, tt.addErr)
			}

			svc := NewWordService(mockRepo, testutil.NewTestLogger())

			err := svc.AddPersonalWord(userID, tt.english, tt.russian)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.addErr != nil:
				assert.Error(t, err)
			case tt.expectAdd:
				assert.NoError(t, err)
			default:
				assert.Error(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeletePersonalWord(t *testing.T) {
	tests := []struct {
		name        string
		deleted     bool
		deleteErr   error
		expectedErr error
	}{
		{
			name:    "owned personal word",
			deleted: true,
		},
		{
			name:        "default or non-owned word",
			deleted:     false,
			expectedErr: domain.ErrWordNotOwned,
		},
		{
			name:      "database error",
			deleteErr: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := int64(123)
			wordID := 7

			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("DeleteOwnedWord", wordID, userID).Return(tt.deleted, tt.deleteErr)

			svc := NewWordService(mockRepo, testutil.NewTestLogger())

			err := svc.DeletePersonalWord(userID, wordID)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.deleteErr != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_StudiedCount(t *testing.T) {
	userID := int64(123)

	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("CountVisibleWords", userID).Return(14, nil)

	svc := NewWordService(mockRepo, testutil.NewTestLogger())

	count, err := svc.StudiedCount(userID)

	assert.NoError(t, err)
	assert.Equal(t, 14, count)
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "cat", expected: "Cat"},
		{name: "uppercase", input: "CAT", expected: "Cat"},
		{name: "mixed", input: "cAt", expected: "Cat"},
		{name: "surrounding whitespace", input: "  cat ", expected: "Cat"},
		{name: "cyrillic", input: "кот", expected: "Кот"},
		{name: "two words", input: "ice cream", expected: "Ice Cream"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeWord(tt.input))
		})
	}
}
