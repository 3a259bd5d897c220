package service

import (
	"github.com/sevirov89/DataBaseBot/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser creates the user on first contact; repeated calls only
// refresh the stored username and first name
func (s *UserService) RegisterUser(userID int64, username, firstName string) error {
	return s.userRepo.UpsertUser(userID, username, firstName)
}
