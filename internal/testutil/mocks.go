package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(userID int64, username, firstName string) error {
	args := m.Called(userID, username, firstName)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) FindVisibleWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountVisibleWords(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetPersonalWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) AddPersonalWord(english, russian string, ownerID int64) (int, error) {
	args := m.Called(english, russian, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) DeleteOwnedWord(wordID int, userID int64) (bool, error) {
	args := m.Called(wordID, userID)
	return args.Bool(0), args.Error(1)
}
