package handlers

import (
	"context"
	"net/http"

	"mini-dating-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

// Matches is the match service used by MatchHandler
type Matches interface {
	ListForUser(ctx context.Context, userID string) ([]*models.Match, error)
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
}

// MatchHandler handles match-related HTTP requests
type MatchHandler struct {
	matchService Matches
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService Matches) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// ListForUser handles GET /api/v1/matches/user/{userId}
func (h *MatchHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := canonicalID(chi.URLParam(r, "userId"))
	if !ok {
		respondError(w, "userId must be a valid UUID", http.StatusBadRequest)
		return
	}

	matches, err := h.matchService.ListForUser(r.Context(), userID)
	if err != nil {
		logFailure(err).Str("user_id", userID).Msg("Failed to list matches")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

// GetMatch handles GET /api/v1/matches/{id}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := canonicalID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, "id must be a valid UUID", http.StatusBadRequest)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		logFailure(err).Str("match_id", matchID).Msg("Failed to get match")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}
