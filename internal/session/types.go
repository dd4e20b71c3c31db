package session

import (
	"sync"
	"time"
)

// Constants for pagination
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Constants for expiry
const (
	DefaultTTL             = 24 * time.Hour
	DefaultCleanupInterval = 2 * time.Hour
)

// Session binds a State to an id so remote callers can keep their own
// result set between requests.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	mu       sync.Mutex
	lastUsed time.Time
	state    *State
}

// State returns the session's client state.
func (s *Session) State() *State {
	return s.state
}

func (s *Session) touch(t time.Time) {
	s.mu.Lock()
	s.lastUsed = t
	s.mu.Unlock()
}

// LastUsed returns when the session was last touched.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Summary is the JSON view of a session.
type Summary struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUsed    time.Time `json:"last_used"`
	LastQuery   string    `json:"last_query"`
	ResultCount int       `json:"result_count"`
}

// Summary snapshots the session for listing.
func (s *Session) Summary() Summary {
	return Summary{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		LastUsed:    s.LastUsed(),
		LastQuery:   s.state.Query(),
		ResultCount: len(s.state.Results()),
	}
}

// ListResponse is one page of sessions.
type ListResponse struct {
	Sessions      []Summary `json:"sessions"`
	Page          int       `json:"page"`
	PageSize      int       `json:"page_size"`
	TotalSessions int       `json:"total_sessions"`
	TotalPages    int       `json:"total_pages"`
}
