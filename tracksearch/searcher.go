// Package tracksearch searches the provider for tracks, normalizes the
// results and keeps the caller's last result set for id lookups.
package tracksearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jaki95/track-search/internal/deezer"
	"github.com/jaki95/track-search/internal/domain"
	"github.com/jaki95/track-search/internal/session"
)

type Searcher struct {
	provider    Provider
	placeholder string
}

// New creates a Searcher. placeholder is the cover used for tracks without
// album art.
func New(provider Provider, placeholder string) *Searcher {
	if placeholder == "" {
		placeholder = domain.PlaceholderCover
	}
	return &Searcher{
		provider:    provider,
		placeholder: placeholder,
	}
}

// Search returns the tracks matching query in provider order. A blank query
// falls back to Trending. On failure the returned slice is empty (never nil)
// and the error says why; the previous result set of st is kept.
func (s *Searcher) Search(ctx context.Context, st *session.State, query string) ([]domain.Track, error) {
	if strings.TrimSpace(query) == "" {
		return s.Trending(ctx, st)
	}

	st.SetQuery(query)

	tracks, err := s.fetch(ctx, st, func(ctx context.Context) ([]deezer.RawTrack, error) {
		return s.provider.Search(ctx, query)
	})
	if err != nil {
		logFailure("Error searching tracks", err, "query", query)
		return []domain.Track{}, fmt.Errorf("search %q: %w", query, err)
	}

	slog.Debug("Search completed", "query", query, "results", len(tracks))
	return tracks, nil
}

// Trending returns the provider's current top tracks with the same mapping
// and failure policy as Search.
func (s *Searcher) Trending(ctx context.Context, st *session.State) ([]domain.Track, error) {
	tracks, err := s.fetch(ctx, st, s.provider.Chart)
	if err != nil {
		logFailure("Error fetching top tracks", err)
		return []domain.Track{}, fmt.Errorf("trending: %w", err)
	}

	slog.Debug("Trending fetched", "results", len(tracks))
	return tracks, nil
}

// GetByID looks id up in the last result set of st and only asks the
// provider when it is not there. The bool is false when no track is found.
func (s *Searcher) GetByID(ctx context.Context, st *session.State, id int64) (domain.Track, bool, error) {
	if track, ok := st.Find(id); ok {
		return track, true, nil
	}

	raw, err := s.provider.Track(ctx, id)
	if err != nil {
		logFailure("Error fetching track by ID", err, "id", id)
		return domain.Track{}, false, fmt.Errorf("track %d: %w", id, err)
	}

	return deezer.Normalize(*raw, s.placeholder), true, nil
}

// fetch runs one list request as the newest request on st and commits the
// normalized result if nothing newer started meanwhile.
func (s *Searcher) fetch(ctx context.Context, st *session.State, get func(context.Context) ([]deezer.RawTrack, error)) ([]domain.Track, error) {
	reqCtx, ticket := st.Begin(ctx)
	defer st.End(ticket)

	raw, err := get(reqCtx)
	if err != nil {
		if !st.Current(ticket) {
			return nil, fmt.Errorf("%w: %v", ErrSuperseded, err)
		}
		return nil, err
	}

	tracks := deezer.NormalizeAll(raw, s.placeholder)
	if !st.Commit(ticket, tracks) {
		return nil, ErrSuperseded
	}
	return tracks, nil
}

// logFailure reports a collapsed failure. Superseded requests are expected
// and only logged at debug level.
func logFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, ErrSuperseded) {
		slog.Debug(msg, args...)
		return
	}
	slog.Error(msg, args...)
}
