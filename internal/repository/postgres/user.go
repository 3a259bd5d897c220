package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertUser creates the user on first contact and refreshes the
// username and first name on later ones
func (r *UserRepo) UpsertUser(userID int64, username, firstName string) error {
	query := `
		INSERT INTO users (user_id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name
	`
	_, err := r.db.Exec(query, userID, username, firstName)
	return err
}
