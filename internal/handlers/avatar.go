package handlers

import (
	"context"
	"net/http"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Avatars issues pre-signed avatar uploads and confirms them
type Avatars interface {
	PresignUpload(ctx context.Context, userID, contentType string) (*services.AvatarUpload, error)
	ConfirmUpload(ctx context.Context, userID, key string) (*models.User, error)
}

// AvatarHandler handles avatar upload requests
type AvatarHandler struct {
	avatarService Avatars
}

// NewAvatarHandler creates a new avatar handler. A nil service disables
// uploads.
func NewAvatarHandler(avatarService Avatars) *AvatarHandler {
	return &AvatarHandler{
		avatarService: avatarService,
	}
}

// UploadRequest represents the request body for an avatar upload
type UploadRequest struct {
	ContentType string `json:"content_type"`
}

// UploadAvatar handles POST /api/v1/users/{id}/avatar
func (h *AvatarHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if h.avatarService == nil {
		respondServiceError(w, services.ErrAvatarUploadDisabled)
		return
	}

	userID, ok := canonicalID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, "id must be a valid UUID", http.StatusBadRequest)
		return
	}

	var req UploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	upload, err := h.avatarService.PresignUpload(r.Context(), userID, req.ContentType)
	if err != nil {
		logFailure(err).
			Str("user_id", userID).
			Str("content_type", req.ContentType).
			Msg("Failed to generate pre-signed URL")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("key", upload.Key).
		Msg("Pre-signed avatar URL generated")

	respondJSON(w, http.StatusOK, upload)
}

// ConfirmRequest names the uploaded object
type ConfirmRequest struct {
	Key string `json:"key"`
}

// ConfirmAvatar handles POST /api/v1/users/{id}/avatar/confirm
func (h *AvatarHandler) ConfirmAvatar(w http.ResponseWriter, r *http.Request) {
	if h.avatarService == nil {
		respondServiceError(w, services.ErrAvatarUploadDisabled)
		return
	}

	userID, ok := canonicalID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, "id must be a valid UUID", http.StatusBadRequest)
		return
	}

	var req ConfirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if req.Key == "" {
		respondInvalid(w, []string{"key is required"})
		return
	}

	user, err := h.avatarService.ConfirmUpload(r.Context(), userID, req.Key)
	if err != nil {
		logFailure(err).
			Str("user_id", userID).
			Str("key", req.Key).
			Msg("Failed to confirm avatar upload")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("key", req.Key).
		Msg("Avatar upload confirmed")

	respondJSON(w, http.StatusOK, user)
}
