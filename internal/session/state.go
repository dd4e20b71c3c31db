package session

import (
	"context"
	"slices"
	"sync"

	"github.com/jaki95/track-search/internal/domain"
)

// State is the working set of one caller: the most recent result set and
// query. Requests on a State are ordered by generation; starting a new one
// cancels the previous request and only the newest may commit.
type State struct {
	mu          sync.Mutex
	lastResults []domain.Track
	lastQuery   string
	generation  uint64
	cancel      context.CancelFunc
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// Results returns a copy of the last committed result set.
func (s *State) Results() []domain.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lastResults)
}

// Query returns the last query a search was started with.
func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// Find scans the last result set for id.
func (s *State) Find(id int64) (domain.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FindTrack(s.lastResults, id)
}

// Begin supersedes any in-flight request and returns the context and
// generation ticket for the new one. The caller must call End with the ticket.
func (s *State) Begin(ctx context.Context) (context.Context, uint64) {
	reqCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.cancel = cancel
	return reqCtx, s.generation
}

// SetQuery records query as the last-known query.
func (s *State) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = query
}

// Commit replaces the result set if ticket is still the newest request.
func (s *State) Commit(ticket uint64, results []domain.Track) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.generation {
		return false
	}
	s.lastResults = slices.Clone(results)
	return true
}

// Current reports whether ticket is still the newest request.
func (s *State) Current(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ticket == s.generation
}

// End releases the request context of ticket.
func (s *State) End(ticket uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket == s.generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
