package server

import "github.com/jaki95/track-search/internal/domain"

// TracksResponse is a rendered result set. Error is set when the provider
// request failed, so clients can tell a failure from an empty result.
type TracksResponse struct {
	SessionID string         `json:"session_id"`
	Query     string         `json:"query,omitempty"`
	Tracks    []domain.Track `json:"tracks"`
	Count     int            `json:"count"`
	Error     string         `json:"error,omitempty"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID string `json:"id"`
}

// MessageResponse represents a generic message payload used for success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a generic error payload used for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
