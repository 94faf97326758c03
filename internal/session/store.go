package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

type Store struct {
	site     *content.Site
	opts     Options
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(site *content.Site, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SuccessDisplay <= 0 {
		opts.SuccessDisplay = contact.SuccessDisplay
	}
	if opts.ContactPerMinute <= 0 {
		opts.ContactPerMinute = 3
	}
	return &Store{
		site:     site,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Get returns the live session for id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.Lock()
	sess.lastSeen = s.opts.Now()
	sess.Unlock()
	return sess, true
}

// Create starts a new session with a fresh random id.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.site, s.opts)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// GetOrCreate returns the session for id, creating one when id is unknown.
// The boolean reports whether a new session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than ttl and reports how many.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.opts.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(ttl); n > 0 {
				slog.Debug("Expired idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}
