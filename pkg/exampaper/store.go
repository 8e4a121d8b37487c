package exampaper

import "sync"

// Store is the ordered, append-only question collection for one authoring
// session. Entries are never edited in place: the only mutations are
// appending one question or clearing the whole sequence.
type Store struct {
	mu        sync.Mutex
	questions []Question
}

// NewStore creates an empty question store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a question to the end of the sequence. No content validation
// happens here; that is the caller's responsibility.
func (s *Store) Append(q Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, q)
}

// Clear resets the store to an empty sequence.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = nil
}

// Snapshot returns a copy of the current ordered sequence for read-only
// iteration. Later mutations of the store do not affect the snapshot.
func (s *Store) Snapshot() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Len returns the number of questions currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}
