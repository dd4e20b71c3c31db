package tracksearch

import (
	"context"
	"errors"

	"github.com/jaki95/track-search/internal/deezer"
)

// ErrSuperseded is returned when a newer request on the same session state
// started before this one finished. Its results are discarded.
var ErrSuperseded = errors.New("request superseded by a newer one")

// Provider fetches raw track data from the music provider.
type Provider interface {
	// Search returns the first page of tracks matching query
	Search(ctx context.Context, query string) ([]deezer.RawTrack, error)

	// Chart returns the current top tracks
	Chart(ctx context.Context) ([]deezer.RawTrack, error)

	// Track returns a single track by id
	Track(ctx context.Context, id int64) (*deezer.RawTrack, error)
}
