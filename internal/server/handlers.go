package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/match"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Match handlers

// matchResult is the wire form of a ranked recommendation.
type matchResult struct {
	DistroID   string         `json:"distroId"`
	DistroName string         `json:"distroName"`
	DE         string         `json:"desktopEnvironment"`
	Percentage int            `json:"percentage"`
	Reasons    []renderedRule `json:"reasons"`
	Warnings   []renderedRule `json:"warnings,omitempty"`
}

type renderedRule struct {
	Rule string `json:"rule"`
	Text string `json:"text"`
}

func (s *Server) toResults(matches []match.DistroMatch) []matchResult {
	results := make([]matchResult, len(matches))
	for i, m := range matches {
		results[i] = matchResult{
			DistroID:   m.Distro.ID,
			DistroName: m.Distro.Name,
			DE:         m.DE.Name,
			Percentage: m.Percentage,
			Reasons:    s.renderRules(m.Reasons),
			Warnings:   s.renderRules(m.Warnings),
		}
	}
	return results
}

func (s *Server) renderRules(reasons []match.Reason) []renderedRule {
	out := make([]renderedRule, len(reasons))
	for i, re := range reasons {
		out[i] = renderedRule{Rule: string(re.Rule), Text: s.renderer.Render(re)}
	}
	return out
}

func (s *Server) decodeAnswers(w http.ResponseWriter, r *http.Request) (quiz.Answers, bool) {
	var raw quiz.RawAnswers
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return quiz.Answers{}, false
	}
	return quiz.Parse(raw), true
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	matches := s.engine.Rank(answers)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches":      s.toResults(matches),
		"dealBreakers": s.detector.Detect(answers),
		"summary":      s.detector.Summarize(answers),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches": s.toResults(s.engine.Preview(answers)),
	})
}

func (s *Server) handleDealBreakers(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"warnings": s.detector.Detect(answers),
		"summary":  s.detector.Summarize(answers),
	})
}

// Catalog handlers

func (s *Server) handleListDistros(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := catalog.FilterOptions{
		SearchTerm:     q.Get("search"),
		Difficulty:     q["difficulty"],
		ReleaseModel:   q["releaseModel"],
		TargetAudience: q["audience"],
		SortBy:         catalog.SortOption(q.Get("sort")),
		Descending:     q.Get("desc") == "true",
	}

	distros := catalog.ApplyFilters(s.engine.Catalog().Distros, opts)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"distros": distros,
		"count":   len(distros),
	})
}

func (s *Server) handleGetDistro(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	distro := s.engine.Catalog().DistroByID(id)
	if distro == nil {
		respondError(w, http.StatusNotFound, "distro_not_found", "distro not found")
		return
	}
	respondJSON(w, http.StatusOK, distro)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	c := s.engine.Catalog()
	if r.URL.Query().Get("popular") == "true" {
		games := c.PopularGames()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"games": games,
			"count": len(games),
		})
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		games := c.GamesByStatus(status)
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"games": games,
			"count": len(games),
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": c.Games,
		"count": len(c.Games),
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	game := s.engine.Catalog().GameByID(id)
	if game == nil {
		respondError(w, http.StatusNotFound, "game_not_found", "game not found")
		return
	}
	respondJSON(w, http.StatusOK, game)
}
