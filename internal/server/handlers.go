package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaki95/track-search/internal/domain"
	"github.com/jaki95/track-search/internal/session"
)

// health godoc
// @Summary Health check
// @Tags Utility
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// createSession godoc
// @Summary Create a search session
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/v1/sessions [post]
func (s *Server) createSession(c *gin.Context) {
	sess := s.sessions.Create()
	c.Header(SessionHeader, sess.ID)
	c.JSON(http.StatusCreated, SessionResponse{ID: sess.ID})
}

// listSessions godoc
// @Summary List sessions
// @Tags Sessions
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} session.ListResponse
// @Router /api/v1/sessions [get]
func (s *Server) listSessions(c *gin.Context) {
	page := 1
	pageSize := session.DefaultPageSize

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if ps := c.Query("pageSize"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= session.MaxPageSize {
			pageSize = parsed
		}
	}

	c.JSON(http.StatusOK, s.sessions.List(page, pageSize))
}

// deleteSession godoc
// @Summary Delete a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (s *Server) deleteSession(c *gin.Context) {
	id := c.Param("id")

	if err := s.sessions.Delete(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Session deleted"})
}

// searchTracks godoc
// @Summary Search tracks
// @Description Searches the provider. A blank query returns the trending tracks.
// @Tags Tracks
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} TracksResponse
// @Router /api/v1/tracks/search [get]
func (s *Server) searchTracks(c *gin.Context) {
	sess := s.session(c)
	query := c.Query("q")

	tracks, err := s.searcher.Search(c.Request.Context(), sess.State(), query)
	s.renderTracks(c, sess, query, tracks, err)
}

// trendingTracks godoc
// @Summary Trending tracks
// @Tags Tracks
// @Produce json
// @Success 200 {object} TracksResponse
// @Router /api/v1/tracks/trending [get]
func (s *Server) trendingTracks(c *gin.Context) {
	sess := s.session(c)

	tracks, err := s.searcher.Trending(c.Request.Context(), sess.State())
	s.renderTracks(c, sess, "", tracks, err)
}

// getTrack godoc
// @Summary Get a track
// @Description Looks the track up in the session's last results before asking the provider.
// @Tags Tracks
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} domain.Track
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/tracks/{id} [get]
func (s *Server) getTrack(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("%v: %s", ErrInvalidTrackID, c.Param("id"))})
		return
	}

	sess := s.session(c)

	track, ok, err := s.searcher.GetByID(c.Request.Context(), sess.State(), id)
	if err != nil {
		c.JSON(lookupStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("track not found: %d", id)})
		return
	}

	c.JSON(http.StatusOK, track)
}

// session resolves the caller's session from the request header, creating
// one when the header is missing or unknown.
func (s *Server) session(c *gin.Context) *session.Session {
	sess := s.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID)
	return sess
}

// renderTracks writes a result set. Provider failures still answer 200 with
// an empty list, plus the error text so the client can show it.
func (s *Server) renderTracks(c *gin.Context, sess *session.Session, query string, tracks []domain.Track, err error) {
	if tracks == nil {
		tracks = []domain.Track{}
	}

	resp := TracksResponse{
		SessionID: sess.ID,
		Query:     query,
		Tracks:    tracks,
		Count:     len(tracks),
	}
	if err != nil {
		resp.Error = err.Error()
		c.Header("X-Search-Error", "true")
	}

	c.JSON(http.StatusOK, resp)
}
