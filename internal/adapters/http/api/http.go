// Package api serves the latest pipeline snapshot over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/slate/internal/adapters/repository"
	"github.com/okian/slate/internal/domain/types"
)

// defaultMaxLimit caps list endpoints when no option overrides it.
const defaultMaxLimit = 100

// Dependencies are the snapshot reads the handlers need.
type Dependencies interface {
	TopN(ctx context.Context, n int) ([]types.RankingEntry, error)
	Rank(ctx context.Context, teamID string) (types.RankingEntry, error)
	Matchups(ctx context.Context, n int, tier string) ([]types.MatchupEntry, error)
}

// Server wires HTTP routes for the read API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	rankingsHandler *RankingsHandler
	rankHandler     *RankHandler
	matchupsHandler *MatchupsHandler
}

// Option configures the Server.
type Option func(*serverConfig)

type serverConfig struct {
	maxLimit int
}

// WithMaxLimit caps the limit query parameter of list endpoints.
func WithMaxLimit(n int) Option {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	cfg := serverConfig{maxLimit: defaultMaxLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		rankingsHandler: NewRankingsHandler(deps, cfg.maxLimit),
		rankHandler:     NewRankHandler(deps),
		matchupsHandler: NewMatchupsHandler(deps, cfg.maxLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("GET /rank/{team_id}", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("GET /matchups", MetricsMiddleware(s.matchupsHandler.HandleGetMatchups, "matchups"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError maps repository sentinels to status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrNoSnapshot):
		writeError(w, http.StatusServiceUnavailable, "not_ready", ErrNotReady)
	case errors.Is(err, repository.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// parseLimit reads ?limit. A missing value means maxLimit.
func parseLimit(r *http.Request, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return maxLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest)
	}
	if n > maxLimit {
		return 0, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, n, maxLimit)
	}
	return n, nil
}

func writeLimitError(w http.ResponseWriter, err error) {
	code := "bad_request"
	if errors.Is(err, ErrLimitExceeded) {
		code = "limit_exceeded"
	}
	writeError(w, http.StatusBadRequest, code, err)
}
