package model

import "time"

// SessionTTL is the default lifetime of a login session
const SessionTTL = time.Hour

// User identifies the logged-in account. Login is local, so the user
// is a fixed generic identity rather than a server-side account.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session represents an active login session
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired at the given
// instant. The authenticated flag is always derived from this, never
// stored.
func (s *Session) IsExpired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

// Remaining returns the time left before expiry, never negative
func (s *Session) Remaining(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	if r := s.ExpiresAt.Sub(now); r > 0 {
		return r
	}
	return 0
}
