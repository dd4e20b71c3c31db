package domain

import "fmt"

// PlaceholderCover is shown when the provider supplies no album art.
const PlaceholderCover = "./assets/images/fallback.svg"

// Track is the normalized, application-facing representation of one track.
type Track struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Cover    string `json:"cover"`
	Preview  string `json:"preview,omitempty"`
}

// FormatDuration renders whole seconds as m:ss. Minutes are not padded and
// negative input is clamped to zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FindTrack returns the first track in tracks with the given id.
func FindTrack(tracks []Track, id int64) (Track, bool) {
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
