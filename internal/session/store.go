// Package session keeps the workspaces of live client sessions and expires
// the idle ones.
package session

import (
	"context"
	"sync"
	"time"

	"studymate/internal/domain"
	"studymate/internal/logger"
	"studymate/internal/navigation"
	"studymate/internal/util"

	"go.uber.org/zap"
)

type Store struct {
	factory PageFactory
	idleTTL time.Duration
	now     func() time.Time

	mu         sync.RWMutex
	workspaces map[string]*Workspace
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(factory PageFactory, idleTTL time.Duration, opts ...Option) *Store {
	s := &Store{
		factory:    factory,
		idleTTL:    idleTTL,
		now:        time.Now,
		workspaces: make(map[string]*Workspace),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create() *Workspace {
	now := s.now()
	w := &Workspace{
		Pages:     s.factory(),
		ID:        util.NewULID(),
		CreatedAt: now,
		Menu:      navigation.NewMenu(),
		lastSeen:  now,
	}

	s.mu.Lock()
	s.workspaces[w.ID] = w
	total := len(s.workspaces)
	s.mu.Unlock()

	logger.Get().Info("Session created", zap.String("session_id", w.ID), zap.Int("active_sessions", total))
	return w
}

// Get returns the workspace and marks it as seen.
func (s *Store) Get(id string) (*Workspace, error) {
	s.mu.RLock()
	w, ok := s.workspaces[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	w.touch(s.now())
	return w, nil
}

// Delete removes and closes the workspace.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	w, ok := s.workspaces[id]
	delete(s.workspaces, id)
	s.mu.Unlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}
	w.Close()
	logger.Get().Info("Session closed", zap.String("session_id", id))
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

// Sweep closes every workspace not seen for longer than the idle TTL and
// returns how many were closed.
func (s *Store) Sweep(now time.Time) int {
	var expired []*Workspace
	s.mu.Lock()
	for id, w := range s.workspaces {
		if now.Sub(w.LastSeen()) > s.idleTTL {
			expired = append(expired, w)
			delete(s.workspaces, id)
		}
	}
	s.mu.Unlock()

	for _, w := range expired {
		w.Close()
		logger.Get().Info("Session expired", zap.String("session_id", w.ID), zap.Time("last_seen", w.LastSeen()))
	}
	return len(expired)
}

// CloseAll closes and forgets every workspace.
func (s *Store) CloseAll() {
	s.mu.Lock()
	all := s.workspaces
	s.workspaces = make(map[string]*Workspace)
	s.mu.Unlock()

	for _, w := range all {
		w.Close()
	}
	logger.Get().Info("All sessions closed", zap.Int("count", len(all)))
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				logger.Get().Debug("Swept idle sessions", zap.Int("expired", n), zap.Int("active", s.Len()))
			}
		}
	}
}
