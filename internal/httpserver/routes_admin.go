// internal/httpserver/routes_admin.go
//
// Solve-history endpoints, mounted under /admin and gated by requireAdmin:
//   - GET /admin/history?limit=N   → newest solves first
//   - GET /admin/history/summary   → per-puzzle counts and average durations

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (s *Server) mountAdmin(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin(s.cfg.AdminSecret))
		r.Get("/history", s.handleHistory)
		r.Get("/history/summary", s.handleHistorySummary)
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}
	solves, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("history recent")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"solves": solves})
}

func (s *Server) handleHistorySummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.history.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("history summary")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": sum})
}
