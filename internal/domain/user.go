package domain

import "time"

// User represents a bot user, created on first contact
type User struct {
	UserID    int64
	Username  string
	FirstName string
	CreatedAt time.Time
}
