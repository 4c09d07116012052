package session

import (
	"time"

	"gymverse/internal/domain/record"
)

// Session durations offered at login.
const (
	RememberDays = 30
	DefaultDays  = 1
)

// Session is the singleton proof of a successful admin login. It is
// independent of the credential record: changing the password destroys the
// session, and an expired session simply reads as absent.
// Timestamps are Unix milliseconds, matching the stored wire shape.
type Session struct {
	User      string `json:"user"`
	Token     string `json:"token"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

// New issues a session for the given user lasting the given number of days.
// PRE: user is non-empty, days > 0
// POST: Returns a session with a fresh opaque token
func New(user string, days int, now time.Time) Session {
	return Session{
		User:      user,
		Token:     record.NewID(),
		IssuedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour).UnixMilli(),
	}
}

// IsValid reports whether the session proves a login at the given time.
// A session with no token or no expiry never validates.
// INVARIANT: Session fields are not mutated
func (s *Session) IsValid(now time.Time) bool {
	if s.Token == "" || s.ExpiresAt == 0 {
		return false
	}
	return now.UnixMilli() <= s.ExpiresAt
}
