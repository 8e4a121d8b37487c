package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/exampaper/go-exampaper/pkg/exampaper"
)

// Session owns one authoring session: its question store and the uploaded
// template bytes. Nothing is shared across sessions.
type Session struct {
	ID    string
	Store *exampaper.Store

	mu       sync.Mutex
	template []byte
}

// SetTemplate replaces the session's template bytes.
func (s *Session) SetTemplate(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = data
}

// Template returns the uploaded template bytes, or nil if none was set.
func (s *Session) Template() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SessionManager tracks live sessions by ID. Sessions live for the process
// lifetime; there is no persistence beyond one generation request.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Create registers a new session with a fresh ID and empty store.
func (m *SessionManager) Create() *Session {
	sess := &Session{
		ID:    uuid.NewString(),
		Store: exampaper.NewStore(),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return sess
}

// Get looks up a session by ID.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}
