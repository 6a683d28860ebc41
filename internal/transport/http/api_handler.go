package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quest-academy-service/internal/app"
	"quest-academy-service/internal/domain"
)

// APIHandler exposes the read/reset surfaces as plain JSON endpoints.
type APIHandler struct {
	service *app.ActivityService
}

func NewAPIHandler(service *app.ActivityService) *APIHandler {
	return &APIHandler{service: service}
}

// Register mounts the endpoints on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /progress", h.getProgress)
	mux.HandleFunc("POST /progress/reset", h.resetProgress)
	mux.HandleFunc("GET /leaderboard", h.getLeaderboard)
	mux.HandleFunc("GET /leaderboard/rank", h.getRank)
	mux.HandleFunc("GET /leaderboard/stats", h.getStats)
	mux.HandleFunc("GET /games", h.getGames)
	mux.HandleFunc("GET /challenges", h.getChallenges)
}

func (h *APIHandler) getProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Progress().Read())
}

func (h *APIHandler) resetProgress(w http.ResponseWriter, r *http.Request) {
	h.service.Progress().Reset(r.Context())
	writeJSON(w, http.StatusOK, h.service.Progress().Read())
}

func (h *APIHandler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard().Query(r.Context(), filtersFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *APIHandler) getRank(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}
	ranking, err := h.service.Leaderboard().RankOf(r.Context(), userID, filtersFromQuery(r))
	if errors.Is(err, domain.ErrEntryNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func (h *APIHandler) getStats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}
	stats, err := h.service.Leaderboard().StatsOf(r.Context(), userID, domain.Subject(r.URL.Query().Get("subject")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *APIHandler) getGames(w http.ResponseWriter, r *http.Request) {
	subject := domain.Subject(r.URL.Query().Get("subject"))
	difficulty, _ := strconv.Atoi(r.URL.Query().Get("difficulty"))
	games, err := h.service.Catalog().Games(r.Context(), subject, difficulty)
	if errors.Is(err, domain.ErrInvalidSubject) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *APIHandler) getChallenges(w http.ResponseWriter, r *http.Request) {
	subject := domain.Subject(r.URL.Query().Get("subject"))
	writeJSON(w, http.StatusOK, h.service.Catalog().ChallengeTypes(subject))
}

func filtersFromQuery(r *http.Request) domain.Filters {
	q := r.URL.Query()
	skillLevel, _ := strconv.Atoi(q.Get("skillLevel"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return domain.Filters{
		Subject:       domain.Subject(q.Get("subject")),
		ChallengeType: q.Get("challengeType"),
		SkillLevel:    skillLevel,
		Period:        domain.Period(q.Get("period")),
		Limit:         limit,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
