// Package server exposes the diary feed over a single-route HTTP server.
//
// Trust boundary: the feed endpoint has no authentication and no origin
// checks. Any process that can reach the bound address can read the
// user's diary headings and front matter. That is the accepted posture
// for a loopback-oriented local tool; do not bolt auth onto it here.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/taigrr/obsidian-ics/internal/config"
	"github.com/taigrr/obsidian-ics/internal/feed"
	"github.com/taigrr/obsidian-ics/internal/ics"
	"github.com/taigrr/obsidian-ics/internal/log"
)

// FeedPath is the single route the server answers.
const FeedPath = "/feed.ics"

// feedFilename is the attachment name handed to calendar clients.
const feedFilename = "obsidian-diary.ics"

// Server serves the calendar feed. It has exactly two states, stopped and
// listening, with one transition each way. A configuration change is a
// Stop followed by a Start; there is no drain protocol, in-flight requests
// on the old listener are simply cut.
type Server struct {
	cfg     *config.Config
	builder *feed.Builder
	mux     *http.ServeMux

	mu       sync.Mutex
	listener net.Listener
	httpSrv  *http.Server
}

// New constructs a stopped Server.
func New(cfg *config.Config, builder *feed.Builder) *Server {
	s := &Server{
		cfg:     cfg,
		builder: builder,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc(FeedPath, s.handleFeed)
	s.mux.HandleFunc("/", s.handleNotFound)
	return s
}

// Handler returns the route table; tests drive it directly.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start binds the configured address and begins serving. Bind failures
// (port in use, permission denied) are returned synchronously and leave
// the server stopped; there is no retry or fallback port.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.New("server already listening")
	}

	ln, err := net.Listen("tcp", s.cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.cfg.ListenAddr(), err)
	}

	srv := &http.Server{
		Handler:      s.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	s.listener = ln
	s.httpSrv = srv

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("feed server stopped unexpectedly", err)
		}
	}()

	log.Info("feed server listening", "url", s.cfg.FeedURL())
	return nil
}

// Stop closes the listener. Stopping a stopped server is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	err := s.httpSrv.Close()
	s.listener = nil
	s.httpSrv = nil
	log.Info("feed server stopped")
	return err
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != FeedPath {
		s.handleNotFound(w, r)
		return
	}

	start := time.Now()
	events, err := s.builder.Build(r.Context())
	if err != nil {
		log.Error("feed build failed", err)
		s.internalError(w)
		return
	}

	body, err := ics.Encode(events)
	if err != nil {
		log.Error("calendar encoding failed", err, "events", len(events))
		s.internalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", feedFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))

	log.Info("served feed", "events", len(events), "duration", time.Since(start), "remote", r.RemoteAddr)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	log.Debug("not found", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
	http.Error(w, "not found", http.StatusNotFound)
}

// internalError keeps failure responses generic; details stay in the log.
func (s *Server) internalError(w http.ResponseWriter) {
	http.Error(w, "failed to generate calendar feed", http.StatusInternalServerError)
}
