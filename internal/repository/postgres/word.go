package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

// pq error code for unique constraint violations
const uniqueViolation = "23505"

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// FindVisibleWords returns default words plus the user's personal words
func (r *WordRepo) FindVisibleWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT DISTINCT w.word_id, w.english_word, w.russian_word, w.is_default, w.created_by, w.created_at
		FROM words w
		LEFT JOIN user_words uw ON w.word_id = uw.word_id AND uw.user_id = $1
		WHERE w.is_default = TRUE OR uw.user_id = $1
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

// CountVisibleWords returns the size of the user's visible word pool
func (r *WordRepo) CountVisibleWords(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT w.word_id)
		FROM words w
		LEFT JOIN user_words uw ON w.word_id = uw.word_id AND uw.user_id = $1
		WHERE w.is_default = TRUE OR uw.user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetPersonalWords returns the words created by the user, ordered alphabetically
func (r *WordRepo) GetPersonalWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT w.word_id, w.english_word, w.russian_word, w.is_default, w.created_by, w.created_at
		FROM words w
		JOIN user_words uw ON w.word_id = uw.word_id
		WHERE uw.user_id = $1 AND w.created_by = $1
		ORDER BY w.english_word
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

// AddPersonalWord creates a non-default word and its ownership link in
// one transaction. A failed link insert rolls the word row back, so no
// orphaned word can block later re-adds of the same pair.
func (r *WordRepo) AddPersonalWord(english, russian string, ownerID int64) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	insertWord := `
		INSERT INTO words (english_word, russian_word, is_default, created_by)
		VALUES ($1, $2, FALSE, $3)
		RETURNING word_id
	`

	var wordID int
	if err := tx.QueryRow(insertWord, english, russian, ownerID).Scan(&wordID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, domain.ErrDuplicateWord
		}
		return 0, err
	}

	linkOwnership := `
		INSERT INTO user_words (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`

	if _, err := tx.Exec(linkOwnership, ownerID, wordID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return wordID, nil
}

// DeleteOwnedWord removes the ownership link and the word row in one
// transaction, but only if the word is a personal word created by
// userID. Default words are never deleted.
func (r *WordRepo) DeleteOwnedWord(wordID int, userID int64) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	deleteOwnership := `
		DELETE FROM user_words
		WHERE user_id = $1 AND word_id = $2
	`

	if _, err := tx.Exec(deleteOwnership, userID, wordID); err != nil {
		return false, err
	}

	deleteWord := `
		DELETE FROM words
		WHERE word_id = $1 AND created_by = $2 AND is_default = FALSE
	`

	res, err := tx.Exec(deleteWord, wordID, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return affected > 0, nil
}

func scanWords(rows *sql.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var createdBy sql.NullInt64
		if err := rows.Scan(&w.WordID, &w.EnglishWord, &w.RussianWord, &w.IsDefault, &createdBy, &w.CreatedAt); err != nil {
			return nil, err
		}
		if createdBy.Valid {
			w.CreatedBy = &createdBy.Int64
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
