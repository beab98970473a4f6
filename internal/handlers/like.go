package handlers

import (
	"context"
	"net/http"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Likes is the like service used by LikeHandler
type Likes interface {
	Like(ctx context.Context, fromUserID, toUserID string) (*services.LikeResult, error)
	LikesGiven(ctx context.Context, userID string) ([]*models.Like, error)
	LikesReceived(ctx context.Context, userID string) ([]*models.Like, error)
	HasLiked(ctx context.Context, fromUserID, toUserID string) (bool, error)
}

// LikeHandler handles like-related HTTP requests
type LikeHandler struct {
	likeService Likes
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likeService Likes) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// CreateLikeRequest represents the request body for a like
type CreateLikeRequest struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
}

// CreateLike handles POST /api/v1/likes
func (h *LikeHandler) CreateLike(w http.ResponseWriter, r *http.Request) {
	var req CreateLikeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}

	var problems []string
	var ok bool
	if req.FromUserID, ok = canonicalID(req.FromUserID); !ok {
		problems = append(problems, "from_user_id must be a valid UUID")
	}
	if req.ToUserID, ok = canonicalID(req.ToUserID); !ok {
		problems = append(problems, "to_user_id must be a valid UUID")
	}
	if len(problems) > 0 {
		respondInvalid(w, problems)
		return
	}

	result, err := h.likeService.Like(r.Context(), req.FromUserID, req.ToUserID)
	if err != nil {
		logFailure(err).
			Str("from_user_id", req.FromUserID).
			Str("to_user_id", req.ToUserID).
			Msg("Failed to create like")
		respondServiceError(w, err)
		return
	}

	event := log.Info().
		Str("from_user_id", req.FromUserID).
		Str("to_user_id", req.ToUserID).
		Bool("is_match", result.IsMatch)
	if result.Match != nil {
		event = event.Str("match_id", result.Match.ID)
	}
	event.Msg("Like created")

	respondJSON(w, http.StatusCreated, result)
}

// LikesGiven handles GET /api/v1/likes/given/{userId}
func (h *LikeHandler) LikesGiven(w http.ResponseWriter, r *http.Request) {
	h.listLikes(w, r, h.likeService.LikesGiven)
}

// LikesReceived handles GET /api/v1/likes/received/{userId}
func (h *LikeHandler) LikesReceived(w http.ResponseWriter, r *http.Request) {
	h.listLikes(w, r, h.likeService.LikesReceived)
}

func (h *LikeHandler) listLikes(
	w http.ResponseWriter,
	r *http.Request,
	list func(context.Context, string) ([]*models.Like, error),
) {
	userID, ok := canonicalID(chi.URLParam(r, "userId"))
	if !ok {
		respondError(w, "userId must be a valid UUID", http.StatusBadRequest)
		return
	}

	likes, err := list(r.Context(), userID)
	if err != nil {
		logFailure(err).Str("user_id", userID).Msg("Failed to list likes")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, likes)
}

// CheckLike handles GET /api/v1/likes/check?from_user_id=&to_user_id=
func (h *LikeHandler) CheckLike(w http.ResponseWriter, r *http.Request) {
	fromUserID, okFrom := canonicalID(r.URL.Query().Get("from_user_id"))
	toUserID, okTo := canonicalID(r.URL.Query().Get("to_user_id"))
	if !okFrom || !okTo {
		respondError(w, "from_user_id and to_user_id must be valid UUIDs", http.StatusBadRequest)
		return
	}

	liked, err := h.likeService.HasLiked(r.Context(), fromUserID, toUserID)
	if err != nil {
		logFailure(err).
			Str("from_user_id", fromUserID).
			Str("to_user_id", toUserID).
			Msg("Failed to check like")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}
