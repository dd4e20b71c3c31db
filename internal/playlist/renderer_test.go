package playlist

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/track-search/internal/domain"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	err := r.Render([]domain.Track{
		{ID: 1, Title: "A", Artist: "B", Duration: "2:05"},
		{ID: 22, Title: "Harder, Better", Artist: "Daft Punk", Duration: "3:44"},
	}, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "01."))
	assert.Contains(t, lines[0], "B - A")
	assert.Contains(t, lines[0], "[2:05]")
	assert.True(t, strings.HasPrefix(lines[1], "02."))
	assert.Contains(t, lines[1], "#22")
}

func TestTextRendererEmptyAndFailed(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	require.NoError(t, r.Render([]domain.Track{}, nil))
	assert.Equal(t, "No tracks found\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Render([]domain.Track{}, errors.New("deezer: quota exceeded")))
	assert.Equal(t, "Search failed: deezer: quota exceeded\n", buf.String())
}

func TestRenderTrack(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	require.NoError(t, r.RenderTrack(domain.Track{ID: 5, Title: "T", Artist: "A", Duration: "0:30", Cover: "c.jpg"}))
	out := buf.String()
	assert.Contains(t, out, "Title:")
	assert.Contains(t, out, "c.jpg")
	assert.NotContains(t, out, "Preview:")
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf)

	// Stop before Start is a no-op
	s.Stop()

	s.Start("Searching...")
	s.Start("Searching again...")
	s.Stop()
	s.Stop()

	assert.Nil(t, s.bar)
}
