package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/ratelimit"
)

const maxBodyLen = 1024

type Server struct {
	baseURL *url.URL
	repo    Repository
	log     *log.Logger
	metrics *Metrics
	limiter ratelimit.Limiter
}

func NewServer(cfg Config, repo Repository, logger *log.Logger, metrics *Metrics) (*Server, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.ShortenRPS > 0 {
		limiter = ratelimit.New(cfg.ShortenRPS)
	}
	return &Server{
		baseURL: base,
		repo:    repo,
		log:     logger,
		metrics: metrics,
		limiter: limiter,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{key}", s.Redirect)
	mux.HandleFunc("POST /shorten", s.Shorten)
	mux.HandleFunc("POST /check", s.Check)
	mux.HandleFunc("GET /health", s.Health)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

func (s *Server) Shorten(w http.ResponseWriter, req *http.Request) {
	s.limiter.Take()

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyLen))
	if err != nil {
		http.Error(w, "URL too long", http.StatusRequestEntityTooLarge)
		return
	}

	origin := strings.TrimSpace(string(body))
	target, err := url.ParseRequestURI(origin)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid URL: %v", err), http.StatusBadRequest)
		return
	}
	if (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		http.Error(w, "Invalid URL: expected an absolute http(s) URL", http.StatusBadRequest)
		return
	}

	id, err := s.repo.SaveURL(req.Context(), origin)
	if err != nil {
		s.log.Error("failed to save url", "url", origin, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	key, err := KeyForID(id)
	if err != nil {
		s.log.Error("failed to encode key", "id", id, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.metrics.shortened.Inc()
	s.log.Debug("shortened", "key", key, "url", origin)

	if _, err := io.WriteString(w, s.baseURL.String()+key); err != nil {
		s.log.Warn("failed to write response", "err", err)
	}
}

func (s *Server) Redirect(w http.ResponseWriter, req *http.Request) {
	target, ok := s.resolve(req.Context(), w, req.PathValue("key"))
	if !ok {
		return
	}
	http.Redirect(w, req, target, http.StatusFound)
}

// Check reports the target of a short url produced by this service.
func (s *Server) Check(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyLen))
	if err != nil {
		http.Error(w, "URL too long", http.StatusRequestEntityTooLarge)
		return
	}

	short, err := url.Parse(strings.TrimSpace(string(body)))
	if err != nil || short.Scheme == "" || short.Host == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	if short.Host != s.baseURL.Host {
		http.Error(w, "Third-party URLs are not yet supported", http.StatusBadRequest)
		return
	}

	target, ok := s.resolve(req.Context(), w, strings.TrimPrefix(short.Path, s.baseURL.Path))
	if !ok {
		return
	}
	if _, err := io.WriteString(w, target); err != nil {
		s.log.Warn("failed to write response", "err", err)
	}
}

func (s *Server) Health(w http.ResponseWriter, req *http.Request) {
	if err := s.repo.Ping(req.Context()); err != nil {
		s.log.Error("health check failed", "err", err)
		http.Error(w, fmt.Sprintf("Health check failed: %v", err), http.StatusServiceUnavailable)
		return
	}
	_, _ = io.WriteString(w, "OK")
}

// resolve writes an error response and returns false when key cannot be resolved.
func (s *Server) resolve(ctx context.Context, w http.ResponseWriter, key string) (string, bool) {
	id, err := IDForKey(key)
	if err != nil {
		s.metrics.invalidKeys.Inc()
		s.metrics.redirects.WithLabelValues("invalid").Inc()
		s.log.Debug("rejected key", "key", key, "err", err)
		http.Error(w, "Invalid key", http.StatusBadRequest)
		return "", false
	}

	target, err := s.repo.GetURL(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		s.metrics.redirects.WithLabelValues("not_found").Inc()
		http.Error(w, "Target url not found", http.StatusNotFound)
		return "", false
	case err != nil:
		s.metrics.redirects.WithLabelValues("error").Inc()
		s.log.Error("failed to get url", "key", key, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return "", false
	}
	s.metrics.redirects.WithLabelValues("found").Inc()
	return target, true
}
