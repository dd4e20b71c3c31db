package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the sessions of the HTTP service.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a session manager. A non-positive ttl uses DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create creates a new empty session
func (m *Manager) Create() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastUsed:  now,
		state:     NewState(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	slog.Debug("Session created", "sessionId", s.ID)
	return s
}

// Get retrieves a session by ID
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// GetOrCreate returns the session for id, or a new one when id is empty or
// unknown.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s, err := m.Get(id); err == nil {
			s.touch(m.now())
			return s
		}
	}
	return m.Create()
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}

// List lists sessions with pagination, oldest first
func (m *Manager) List(page, pageSize int) *ListResponse {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	total := len(sessions)
	start := (page - 1) * pageSize
	end := start + pageSize

	response := &ListResponse{
		Sessions:      []Summary{},
		Page:          page,
		PageSize:      pageSize,
		TotalSessions: total,
		TotalPages:    (total + pageSize - 1) / pageSize,
	}

	if start >= total {
		return response
	}
	if end > total {
		end = total
	}

	for _, s := range sessions[start:end] {
		response.Sessions = append(response.Sessions, s.Summary())
	}
	return response
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartCleanupWorker starts a background worker that drops idle sessions
// until ctx is done.
func (m *Manager) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.cleanupExpired()
			}
		}
	}()
	slog.Info("Session cleanup worker started", "interval", interval, "ttl", m.ttl)
}

// cleanupExpired removes sessions idle for longer than the TTL
func (m *Manager) cleanupExpired() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	cleaned := 0
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		slog.Info("Session cleanup completed", "sessions_cleaned", cleaned)
	}
	return cleaned
}
