// Package playlist renders result sets in the terminal and drives the
// interactive search prompt.
package playlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jaki95/track-search/internal/domain"
	"github.com/jaki95/track-search/internal/session"
)

// Searcher is the part of tracksearch.Searcher the prompt needs.
type Searcher interface {
	Search(ctx context.Context, st *session.State, query string) ([]domain.Track, error)
	Trending(ctx context.Context, st *session.State) ([]domain.Track, error)
}

// Loop renders trending once and then one result set per line read from in.
type Loop struct {
	searcher  Searcher
	renderer  Renderer
	indicator Indicator
	state     *session.State
	prompt    io.Writer
}

func NewLoop(searcher Searcher, renderer Renderer, indicator Indicator, state *session.State, prompt io.Writer) *Loop {
	return &Loop{
		searcher:  searcher,
		renderer:  renderer,
		indicator: indicator,
		state:     state,
		prompt:    prompt,
	}
}

// Run blocks until in is exhausted, ctx is done or a "quit" line is read.
func (l *Loop) Run(ctx context.Context, in io.Reader) error {
	l.indicator.Start("Loading top tracks...")
	tracks, err := l.searcher.Trending(ctx, l.state)
	l.indicator.Stop()
	if rerr := l.renderer.Render(tracks, err); rerr != nil {
		return rerr
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(l.prompt, "search> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "quit" || query == "exit" {
			return nil
		}

		l.indicator.Start(fmt.Sprintf("Searching for %q...", query))
		tracks, err := l.searcher.Search(ctx, l.state, query)
		l.indicator.Stop()

		if rerr := l.renderer.Render(tracks, err); rerr != nil {
			return rerr
		}
	}
	return scanner.Err()
}
