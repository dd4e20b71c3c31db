package deezer

import "github.com/jaki95/track-search/internal/domain"

// RawTrack is a track object as returned by the Deezer API.
type RawTrack struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Preview  string `json:"preview"`
	Artist   struct {
		Name string `json:"name"`
	} `json:"artist"`
	Album struct {
		CoverMedium string `json:"cover_medium"`
	} `json:"album"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// listResponse covers the list form and the error form of a response.
type listResponse struct {
	Data  []RawTrack `json:"data"`
	Error *apiError  `json:"error"`
}

// trackResponse covers the single object form and the error form.
type trackResponse struct {
	RawTrack
	Error *apiError `json:"error"`
}

// Normalize maps a provider track to a domain.Track. An empty placeholder
// falls back to domain.PlaceholderCover.
func Normalize(raw RawTrack, placeholder string) domain.Track {
	if placeholder == "" {
		placeholder = domain.PlaceholderCover
	}

	cover := raw.Album.CoverMedium
	if cover == "" {
		cover = placeholder
	}

	return domain.Track{
		ID:       raw.ID,
		Title:    raw.Title,
		Artist:   raw.Artist.Name,
		Duration: domain.FormatDuration(raw.Duration),
		Cover:    cover,
		Preview:  raw.Preview,
	}
}

// NormalizeAll maps raw tracks in order. The result is never nil.
func NormalizeAll(raw []RawTrack, placeholder string) []domain.Track {
	tracks := make([]domain.Track, 0, len(raw))
	for _, r := range raw {
		tracks = append(tracks, Normalize(r, placeholder))
	}
	return tracks
}
