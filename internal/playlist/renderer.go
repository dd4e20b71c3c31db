package playlist

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jaki95/track-search/internal/domain"
)

// Renderer displays a result set.
type Renderer interface {
	Render(tracks []domain.Track, err error) error
}

// TextRenderer prints numbered rows to a terminal.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(tracks []domain.Track, err error) error {
	if err != nil {
		_, werr := fmt.Fprintf(r.w, "Search failed: %v\n", err)
		return werr
	}
	if len(tracks) == 0 {
		_, werr := fmt.Fprintln(r.w, "No tracks found")
		return werr
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for i, t := range tracks {
		fmt.Fprintf(tw, "%02d.\t%s - %s\t[%s]\t#%d\n", i+1, t.Artist, t.Title, t.Duration, t.ID)
	}
	return tw.Flush()
}

// RenderTrack prints the details of a single track.
func (r *TextRenderer) RenderTrack(t domain.Track) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", t.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", t.Title)
	fmt.Fprintf(tw, "Artist:\t%s\n", t.Artist)
	fmt.Fprintf(tw, "Duration:\t%s\n", t.Duration)
	fmt.Fprintf(tw, "Cover:\t%s\n", t.Cover)
	if t.Preview != "" {
		fmt.Fprintf(tw, "Preview:\t%s\n", t.Preview)
	}
	return tw.Flush()
}
