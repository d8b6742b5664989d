package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/network"
)

// ErrBadOrigin is returned by New for a CORS origin that is neither "*" nor
// an http(s) URL.
var ErrBadOrigin = errors.New("httpapi: invalid CORS origin")

// ErrNilDependency is returned by New for a nil network or planner.
var ErrNilDependency = errors.New("httpapi: network and planner are required")

const shutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to origins; empty or "*" allows all.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithLogger sets the request log entry.
func WithLogger(entry *log.Entry) Option {
	return func(s *Server) {
		if entry != nil {
			s.log = entry
		}
	}
}

// Server serves one network and its planner.
type Server struct {
	net     *network.Network
	planner *itinerary.Planner
	log     *log.Entry
	origins []string
	engine  *gin.Engine
}

// New builds the gin engine and routes.
func New(n *network.Network, p *itinerary.Planner, opts ...Option) (*Server, error) {
	if n == nil || p == nil {
		return nil, ErrNilDependency
	}
	s := &Server{
		net:     n,
		planner: p,
		log:     log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}

	corsCfg, err := s.corsConfig()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)
	r.GET("/locations", s.handleLocations)
	r.POST("/itineraries", s.handleItinerary)
	r.POST("/itineraries/best", s.handleBest)
	s.engine = r

	return s, nil
}

func (s *Server) corsConfig() (cors.Config, error) {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}

	if len(s.origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg, nil
	}
	for _, o := range s.origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg, nil
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return cfg, fmt.Errorf("%w: %q", ErrBadOrigin, o)
		}
	}
	cfg.AllowOrigins = s.origins

	return cfg, nil
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("httpapi: serve: %w", err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	s.log.Info("server stopped")

	return nil
}
