// internal/httpserver/server.go
//
// HTTP server wiring for the puzzle solver.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     compression, JSON content type, CORS, per-client rate limits).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints under /api (see routes_gamepigeon.go, routes_nyt.go).
//   - Admin history endpoints under /admin, gated by an admin JWT.
//
// Notes:
//   - Handlers are stateless: every request carries the full puzzle or
//     position, and only the solve history outlives it.
//   - History writes are best effort; a failed write is logged, never
//     returned to the client.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzle-solver/internal/game"
	"github.com/robalobadob/puzzle-solver/internal/gametree"
	"github.com/robalobadob/puzzle-solver/internal/store"
	"github.com/robalobadob/puzzle-solver/internal/words"
	"github.com/robalobadob/puzzle-solver/internal/wordsearch"
)

// maxBodyBytes bounds request bodies; every puzzle fits comfortably.
const maxBodyBytes = 64 << 10

// Config holds the server settings read from the environment.
type Config struct {
	ClientOrigin   string
	AdminSecret    string
	RateLimitRPS   int
	RateLimitBurst int
	RequestTimeout time.Duration
}

// ConfigFromEnv reads CLIENT_ORIGIN, ADMIN_JWT_SECRET, RATE_LIMIT_RPS,
// RATE_LIMIT_BURST and REQUEST_TIMEOUT, falling back to development defaults.
func ConfigFromEnv() Config {
	return Config{
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
		AdminSecret:    getEnv("ADMIN_JWT_SECRET", "dev_admin_secret_change_me"),
		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 10),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Server bundles the router with the word lists, game solver and history.
type Server struct {
	r       *chi.Mux
	cfg     Config
	words   *words.Lists
	solver  *game.Solver
	history store.Store
	limits  *clientLimits
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config, lists *words.Lists, solver *game.Solver, history store.Store) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		words:   lists,
		solver:  solver,
		history: history,
		limits:  newClientLimits(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                     // debug-level access log
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(chimw.Compress(5))                 // gzip large word lists
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "puzzle-solver",
			"endpoints": endpoints,
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		d, c := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"dictionary": d, "common": c, "trie_nodes": s.words.TrieNodes()})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Use(s.limits.middleware)
		s.mountGamePigeon(r)
		s.mountNYT(r)
	})
	s.mountAdmin(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

var endpoints = []string{
	"/health",
	"/debug/words",
	"POST /api/game_pigeon/anagrams",
	"POST /api/game_pigeon/word_hunt",
	"POST /api/game_pigeon/word_bites",
	"POST /api/game_pigeon/connect4/move",
	"POST /api/game_pigeon/connect4/game_over",
	"POST /api/game_pigeon/gomoku/move",
	"POST /api/game_pigeon/gomoku/game_over",
	"POST /api/nyt/letter_boxed",
	"POST /api/nyt/spelling_bee",
	"/admin/history",
	"/admin/history/summary",
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler { return s.r }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ solving ------------------------------------

// solve decodes the JSON body into Req, runs fn, records the solve and
// writes the response. fn returns the response body and how many results
// it produced. The raw body is what gets digested for history.
func solve[Req any](s *Server, puzzle string, fn func(req Req) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, `{"error":"body_too_large"}`, http.StatusRequestEntityTooLarge)
			return
		}
		var req Req
		if err := json.Unmarshal(body, &req); err != nil {
			if status := statusOf(err); status == http.StatusBadRequest {
				writeError(w, status, err)
				return
			}
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}

		start := time.Now()
		res, n, err := fn(req)
		elapsed := time.Since(start)
		if err != nil {
			status := statusOf(err)
			if status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("puzzle", puzzle).Msg("solve failed")
			}
			writeError(w, status, err)
			return
		}

		log.Debug().Str("puzzle", puzzle).Int("results", n).Dur("elapsed", elapsed).
			Str("requestId", chimw.GetReqID(r.Context())).Msg("solved")
		if err := s.history.Record(r.Context(), store.NewSolve(puzzle, body, n, elapsed)); err != nil {
			log.Warn().Err(err).Str("puzzle", puzzle).Msg("record solve")
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, wordsearch.ErrInvalidInput),
		errors.Is(err, game.ErrInvalidLocations),
		errors.Is(err, gametree.ErrInvalidDepth):
		return http.StatusBadRequest
	case errors.Is(err, gametree.ErrNoValidMoves):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal_error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, returning def when unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring malformed integer")
	}
	return def
}

// envDuration parses k with time.ParseDuration, returning def when unset
// or malformed.
func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring malformed duration")
	}
	return def
}
