package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the state that survives between page interactions: only the
// API key the user typed in.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.RWMutex
	lastSeen   time.Time
	credential string
}

// Credential returns the stored API key, or "" when none was captured.
func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// SetCredential stores key unless a non-empty key is already held.
// It reports whether the key was stored.
func (s *Session) SetCredential(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential != "" {
		return false
	}
	s.credential = key
	return true
}

// ReplaceCredential overwrites the stored key. Used when the user changes it explicitly.
func (s *Session) ReplaceCredential(key string) {
	s.mu.Lock()
	s.credential = strings.TrimSpace(key)
	s.mu.Unlock()
}

// ClearCredential forgets the stored key without ending the session.
func (s *Session) ClearCredential() {
	s.ReplaceCredential("")
}

// LastSeen returns the last time the session was touched.
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Store keeps sessions in memory. Nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new session with a random ID.
func (st *Store) Create() *Session {
	now := st.now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		lastSeen:  now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given ID and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(st.now())
	}
	return s, ok
}

// GetOrCreate returns the existing session for id or a fresh one. The second
// result is true when a new session was created.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

// Delete ends a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than maxIdle and returns how many were removed.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
