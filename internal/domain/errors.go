package domain

import "errors"

// Application errors. Callers branch on these with errors.Is;
// none of them is fatal to the process.
var (
	// ErrInsufficientWords means the user's visible word pool is too
	// small to build a question (minimum 4 words).
	ErrInsufficientWords = errors.New("not enough words to start a game")

	// ErrDuplicateWord means the user already has this word.
	ErrDuplicateWord = errors.New("word already exists")

	// ErrWordNotOwned means the word is default or belongs to another
	// user and cannot be deleted by the caller.
	ErrWordNotOwned = errors.New("word is not owned by user")

	// ErrStateLost means session payload expected by the current state
	// is missing. Callers treat it as "no active question".
	ErrStateLost = errors.New("session payload lost")
)
