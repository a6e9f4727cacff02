package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
)

// Login creates a local session: an opaque generated token with a
// fixed lifetime. There is no server round trip.
func (s *Store) Login(ttl time.Duration) model.Session {
	if ttl <= 0 {
		ttl = model.SessionTTL
	}

	sess := model.Session{
		Token:     "auth-token-" + uuid.NewString(),
		User:      model.User{ID: "user123", Name: "Authenticated User"},
		ExpiresAt: s.now().Add(ttl),
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()
	s.notify()

	logger.Info("Session created", logger.F("expires_at", sess.ExpiresAt))
	return sess
}

// Logout destroys the session. Safe to call when anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	had := s.session != nil
	s.session = nil
	s.mu.Unlock()

	if had {
		logger.Info("Session destroyed")
		s.notify()
	}
}

// SetInitialSession adopts a persisted session, but only while it is
// still live: an expired session never re-enters the authenticated
// state.
func (s *Store) SetInitialSession(sess *model.Session) {
	if sess == nil || sess.Token == "" {
		return
	}
	if sess.IsExpired(s.now()) {
		logger.Info("Discarding expired persisted session")
		return
	}

	s.mu.Lock()
	c := *sess
	s.session = &c
	s.mu.Unlock()
	s.notify()
}

// Session returns a copy of the current session, nil when anonymous
func (s *Store) Session() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	c := *s.session
	return &c
}

// IsAuthenticated derives the auth flag from the expiry timestamp.
// It is never trusted from storage.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && !s.session.IsExpired(s.now())
}

// TimeRemaining reports how long the session has left
func (s *Store) TimeRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Remaining(s.now())
}

// ExpireIfDue transitions to anonymous when the expiry has passed.
// Returns true only on the tick that performs the transition, so
// logout side effects happen exactly once.
func (s *Store) ExpireIfDue() bool {
	s.mu.Lock()
	if s.session == nil || !s.session.IsExpired(s.now()) {
		s.mu.Unlock()
		return false
	}
	s.session = nil
	s.mu.Unlock()

	logger.Info("Session expired, forcing logout")
	s.notify()
	return true
}
