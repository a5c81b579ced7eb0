package app

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one run of the editor. Its ID is attached to every log
// line the session writes.
type Session struct {
	// ID is a random UUID.
	ID string
	// Started is when the session was created.
	Started time.Time
}

// NewSession creates a session with a fresh ID.
func NewSession() Session {
	return Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

// Uptime returns how long the session has been running.
func (s Session) Uptime() time.Duration {
	return time.Since(s.Started)
}
