package session

import "sync"

// Memory is the primary in-memory session backend. A positive capacity
// bounds the number of tracked users; once full, writes for new users
// fail with ErrStoreExhausted so the caller can degrade to a fallback
// tier. Capacity 0 means unlimited.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	sessions map[int64]*Record
}

// NewMemory creates an in-memory session backend
func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		sessions: make(map[int64]*Record),
	}
}

// Get returns a copy of the user's session, or nil if there is none
func (m *Memory) Get(userID int64) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}

	copied := *rec
	return &copied, nil
}

// Put stores the user's session
func (m *Memory) Put(userID int64, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[userID]; !exists {
		if m.capacity > 0 && len(m.sessions) >= m.capacity {
			return ErrStoreExhausted
		}
	}

	copied := *rec
	m.sessions[userID] = &copied
	return nil
}

// Delete removes the user's session; deleting a missing session is a no-op
func (m *Memory) Delete(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}
