package server

import (
	"errors"
	"net/http"

	"github.com/jaki95/track-search/internal/deezer"
)

var ErrInvalidTrackID = errors.New("invalid track id")

// lookupStatus maps a failed single-track lookup to an HTTP status.
func lookupStatus(err error) int {
	var perr *deezer.ProviderError
	if errors.As(err, &perr) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
