// Package session keeps per-user conversational state for the bot:
// the current step of the dialog plus the transient payload attached
// to it (pending english word, active quiz question).
package session

import (
	"errors"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

// State identifies the current step of a user's conversation.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
	// StateWaitingEnglish means the bot waits for an english word to add.
	StateWaitingEnglish State = "waiting_english"
	// StateWaitingRussian means the bot waits for the russian translation.
	StateWaitingRussian State = "waiting_russian"
	// StatePlaying means the user has an active quiz question.
	StatePlaying State = "playing"
)

// ErrStoreExhausted is returned by a backend that ran out of capacity.
var ErrStoreExhausted = errors.New("session store exhausted")

// Game is the payload of an active quiz question.
type Game struct {
	Correct domain.Word
	Options []domain.Word
}

// Record is the full session of one user.
type Record struct {
	State       State
	EnglishWord string
	Game        *Game
}

// Backend is a session backing that may fail transiently.
// Get reports a missing session as (nil, nil).
type Backend interface {
	Get(userID int64) (*Record, error)
	Put(userID int64, rec *Record) error
	Delete(userID int64) error
}

// Store is what handlers use. Implementations never surface backing
// failures to callers: state may silently degrade to a lossy tier, so
// missing payload at any time is normal and reported via the ok flag.
type Store interface {
	State(userID int64) State
	SetState(userID int64, st State)
	Clear(userID int64)

	PutEnglishWord(userID int64, word string)
	EnglishWord(userID int64) (string, bool)

	PutGame(userID int64, g Game)
	Game(userID int64) (Game, bool)
}
