package chat

import (
	"sync"

	"github.com/matzehuels/depscope/pkg/errors"
)

// Store keeps sessions in memory, keyed by session ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Add registers s and returns its ID.
func (st *Store) Add(s *Session) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s.ID
}

// Get returns the session with id, or a NOT_FOUND error.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "chat session %s not found", id)
	}
	return s, nil
}

// Delete removes the session with id, or returns a NOT_FOUND error.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "chat session %s not found", id)
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
