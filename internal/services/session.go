package services

import "time"

// Session is the server-side record of an issued token, stored by token ID.
type Session struct {
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionStore keeps login sessions with a TTL. The Redis client implements
// it; tests use an in-memory fake. Get returns ErrSessionNotFound for a
// missing or expired session.
type SessionStore interface {
	Set(tokenID string, session *Session, ttl time.Duration) error
	Get(tokenID string) (*Session, error)
	Delete(tokenID string) error
}
