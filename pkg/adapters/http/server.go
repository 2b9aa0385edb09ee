// Package http exposes the orthology engine over a JSON HTTP API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/aretw0/orthology/pkg/cache"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes bounds the size of a request body.
const DefaultMaxBodyBytes int64 = 8 << 20

// Request is the body accepted by /classify and /compact.
type Request struct {
	Newick    string   `json:"newick"`
	Separator string   `json:"separator"`
	IDFirst   bool     `json:"id_first"`
	Targets   []string `json:"targets,omitempty"`
}

// ClassifiedTree is the pairwise result of one tree of the input.
type ClassifiedTree struct {
	Tree    int             `json:"tree"`
	Table   *domain.Table   `json:"table"`
	Records []domain.Record `json:"records"`
	Cached  bool            `json:"cached,omitempty"`
}

// ClassifyResponse is returned by POST /classify.
type ClassifyResponse struct {
	Trees []ClassifiedTree `json:"trees"`
}

// CompactTree is the compact result of one tree of the input.
type CompactTree struct {
	Tree       int                `json:"tree"`
	Statements []domain.Statement `json:"statements"`
}

// CompactResponse is returned by POST /compact.
type CompactResponse struct {
	Trees []CompactTree `json:"trees"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server handles the API routes.
type Server struct {
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	cache   *cache.Manager
	metrics http.Handler
	maxBody int64
}

// Option configures a Server.
type Option func(*Server)

// WithLifecycleHooks passes hooks to every engine the server builds.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCache reuses classified tables across identical requests.
func WithCache(m *cache.Manager) Option {
	return func(s *Server) {
		s.cache = m
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger:  slog.Default(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", s.Health)
	r.Post("/classify", s.Classify)
	r.Post("/compact", s.Compact)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": strings.TrimSpace(orthology.Version)})
}

// Classify handles POST /classify.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	req, eng, trees, ok := s.prepare(w, r)
	if !ok {
		return
	}

	resp := ClassifyResponse{Trees: make([]ClassifiedTree, 0, len(trees))}
	for i, tree := range trees {
		table, hit, err := s.classify(r.Context(), eng, req, i, tree)
		if err != nil {
			s.fail(w, "classify", err)
			return
		}
		records, err := orthology.Records(table, req.Targets)
		if err != nil {
			s.fail(w, "classify", err)
			return
		}
		resp.Trees = append(resp.Trees, ClassifiedTree{Tree: i, Table: table, Records: records, Cached: hit})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Compact handles POST /compact.
func (s *Server) Compact(w http.ResponseWriter, r *http.Request) {
	_, eng, trees, ok := s.prepare(w, r)
	if !ok {
		return
	}

	resp := CompactResponse{Trees: make([]CompactTree, 0, len(trees))}
	for i, tree := range trees {
		statements, err := eng.Compact(r.Context(), tree)
		if err != nil {
			s.fail(w, "compact", err)
			return
		}
		resp.Trees = append(resp.Trees, CompactTree{Tree: i, Statements: statements})
	}
	writeJSON(w, http.StatusOK, resp)
}

// prepare decodes the request, builds its engine and parses its trees. It
// writes the error reply itself and reports false when the request is done.
func (s *Server) prepare(w http.ResponseWriter, r *http.Request) (Request, *orthology.Engine, []ports.Node, bool) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, "decode", &domain.MalformedInputError{Source: "request body", Err: err})
		return req, nil, nil, false
	}

	text, err := newick.Sanitize(req.Newick)
	if err != nil {
		s.fail(w, "sanitize", err)
		return req, nil, nil, false
	}
	req.Newick = text

	eng, err := orthology.New(
		orthology.WithSeparator(req.Separator),
		orthology.WithIDFirst(req.IDFirst),
		orthology.WithLifecycleHooks(s.hooks),
		orthology.WithLogger(s.logger),
	)
	if err != nil {
		s.fail(w, "engine", err)
		return req, nil, nil, false
	}

	trees, err := eng.Load(r.Context(), strings.NewReader(req.Newick))
	if err != nil {
		s.fail(w, "load", err)
		return req, nil, nil, false
	}
	return req, eng, trees, true
}

func (s *Server) classify(ctx context.Context, eng *orthology.Engine, req Request, i int, tree ports.Node) (*domain.Table, bool, error) {
	if s.cache == nil {
		table, err := eng.Classify(ctx, tree)
		return table, false, err
	}
	key := cache.Key([]byte(req.Newick), i, req.Separator, req.IDFirst)
	return s.cache.GetOrCompute(ctx, key, func(ctx context.Context) (*domain.Table, error) {
		return eng.Classify(ctx, tree)
	})
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "op", op, "error", err)
	} else {
		s.logger.Warn("request rejected", "op", op, "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrMalformedInput), errors.Is(err, domain.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedTopology):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
