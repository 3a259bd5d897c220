package session

import (
	"sync"

	"go.uber.org/zap"
)

// Tiered is a two-tier Store: a primary Backend plus an unbounded
// in-memory fallback map. When the primary fails the operation silently
// moves to the fallback and the event is logged; the user never sees
// the error. The fallback tier is process-local and lost on restart, so
// callers must tolerate missing payload at any time.
type Tiered struct {
	primary Backend
	logger  *zap.Logger

	mu       sync.RWMutex
	fallback map[int64]*Record
}

// NewTiered creates a tiered session store over the given primary backend
func NewTiered(primary Backend, logger *zap.Logger) *Tiered {
	return &Tiered{
		primary:  primary,
		logger:   logger,
		fallback: make(map[int64]*Record),
	}
}

// State returns the user's current conversational state
func (t *Tiered) State(userID int64) State {
	rec := t.get(userID)
	if rec == nil {
		return StateIdle
	}
	return rec.State
}

// SetState transitions the user into the given state. Setting the same
// state twice is a harmless no-op.
func (t *Tiered) SetState(userID int64, st State) {
	t.update(userID, func(rec *Record) {
		rec.State = st
	})
}

// Clear returns the user to idle and discards the payload. Idempotent.
func (t *Tiered) Clear(userID int64) {
	if err := t.primary.Delete(userID); err != nil {
		t.logger.Warn("session: primary delete failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	t.mu.Lock()
	delete(t.fallback, userID)
	t.mu.Unlock()
}

// PutEnglishWord stores the pending english word of the add-word flow
func (t *Tiered) PutEnglishWord(userID int64, word string) {
	t.update(userID, func(rec *Record) {
		rec.EnglishWord = word
	})
}

// EnglishWord returns the pending english word, if any
func (t *Tiered) EnglishWord(userID int64) (string, bool) {
	rec := t.get(userID)
	if rec == nil || rec.EnglishWord == "" {
		return "", false
	}
	return rec.EnglishWord, true
}

// PutGame stores the active quiz question
func (t *Tiered) PutGame(userID int64, g Game) {
	t.update(userID, func(rec *Record) {
		rec.Game = &g
	})
}

// Game returns the active quiz question, if any
func (t *Tiered) Game(userID int64) (Game, bool) {
	rec := t.get(userID)
	if rec == nil || rec.Game == nil {
		return Game{}, false
	}
	return *rec.Game, true
}

// get reads the primary tier first and falls back to the local map
func (t *Tiered) get(userID int64) *Record {
	rec, err := t.primary.Get(userID)
	if err != nil {
		t.logger.Warn("session: primary read failed, using fallback",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	} else if rec != nil {
		return rec
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if rec, ok := t.fallback[userID]; ok {
		copied := *rec
		return &copied
	}
	return nil
}

// update applies a read-modify-write to the user's session, degrading
// to the fallback map when the primary rejects the write
func (t *Tiered) update(userID int64, mutate func(*Record)) {
	rec := t.get(userID)
	if rec == nil {
		rec = &Record{State: StateIdle}
	}
	mutate(rec)

	err := t.primary.Put(userID, rec)
	if err == nil {
		return
	}
	t.logger.Warn("session: primary write failed, using fallback",
		zap.Int64("user_id", userID),
		zap.Error(err),
	)

	t.mu.Lock()
	t.fallback[userID] = rec
	t.mu.Unlock()
}
