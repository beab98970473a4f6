package handlers

import (
	"context"
	"net/http"
	"strings"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Users is the profile service used by UserHandler
type Users interface {
	CreateUser(ctx context.Context, req services.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService Users
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService Users) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		logFailure(err).Str("email", req.Email).Msg("Failed to create user")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	respondJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		logFailure(err).Msg("Failed to list users")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := canonicalID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, "id must be a valid UUID", http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		logFailure(err).Str("user_id", userID).Msg("Failed to get user")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetUserByEmail handles GET /api/v1/users/by-email?email=
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		respondError(w, "email is required", http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetUserByEmail(r.Context(), email)
	if err != nil {
		logFailure(err).Str("email", email).Msg("Failed to get user by email")
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
