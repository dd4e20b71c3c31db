package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaki95/track-search/config"
	"github.com/jaki95/track-search/internal/domain"
	"github.com/jaki95/track-search/internal/session"
)

// SessionHeader carries the caller's session id on track requests.
const SessionHeader = "X-Session-ID"

// TrackSearcher is the search surface the HTTP API exposes.
type TrackSearcher interface {
	Search(ctx context.Context, st *session.State, query string) ([]domain.Track, error)
	Trending(ctx context.Context, st *session.State) ([]domain.Track, error)
	GetByID(ctx context.Context, st *session.State, id int64) (domain.Track, bool, error)
}

// Server handles HTTP requests for the track search API
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	searcher TrackSearcher
	sessions *session.Manager
}

// New creates a new HTTP server instance
func New(cfg *config.Config, searcher TrackSearcher, sessions *session.Manager) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		cfg:      cfg,
		router:   router,
		searcher: searcher,
		sessions: sessions,
	}

	server.setupRoutes(router)
	return server
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes(router *gin.Engine) {
	router.Use(cors())

	router.GET("/health", s.health)

	api := router.Group("/api/v1")
	{
		api.POST("/sessions", s.createSession)
		api.GET("/sessions", s.listSessions)
		api.DELETE("/sessions/:id", s.deleteSession)

		api.GET("/tracks/search", s.searchTracks)
		api.GET("/tracks/trending", s.trendingTracks)
		api.GET("/tracks/:id", s.getTrack)
	}
}

// cors allows browser front-ends on other origins to call the API.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+SessionHeader)
		c.Header("Access-Control-Expose-Headers", SessionHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is done.
func (s *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
