// Package memory provides an in-process session store, suitable for
// tests and single-node servers without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mpsalisbury/uno/pkg/game/uno"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*uno.Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*uno.Session),
		now:      time.Now,
	}
}

// Load returns a deep copy; callers mutate their copy freely and commit
// with Save.
func (m *Store) Load(ctx context.Context, id string) (*uno.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, found := m.sessions[id]
	if !found {
		return nil, uno.ErrNotFound
	}
	return s.Clone(), nil
}

// Save writes the session if its version matches the stored one, then
// bumps the version on both the stored copy and the caller's session.
// A new session id is accepted at any version.
func (m *Store) Save(ctx context.Context, s *uno.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, found := m.sessions[s.ID]; found && stored.Version != s.Version {
		return uno.ErrVersionConflict
	}
	s.Version++
	m.sessions[s.ID] = s.Clone()
	return nil
}

// Finalize ends the session in one step. Already-ended sessions are
// left untouched.
func (m *Store) Finalize(ctx context.Context, id, winnerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, found := m.sessions[id]
	if !found {
		return uno.ErrNotFound
	}
	if s.Status == uno.Ended {
		return nil
	}
	s.Status = uno.Ended
	s.WinnerID = winnerID
	endedAt := m.now().UTC()
	s.EndedAt = &endedAt
	s.Version++
	return nil
}

// List returns copies of every stored session, for lobby queries.
func (m *Store) List(ctx context.Context) ([]*uno.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sessions := make([]*uno.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s.Clone())
	}
	return sessions, nil
}
