package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	minNameLength  = 2
	maxNameLength  = 50
	minAge         = 18
	maxAge         = 100
	maxBioLength   = 500
	maxEmailLength = 100
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{1EF9}\s'-]+$`)
	validGenders = map[string]bool{"male": true, "female": true, "other": true}
)

// UserService handles user-related business logic
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUserRequest represents a request to create a profile
type CreateUserRequest struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Bio       *string `json:"bio"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// Validate collects every problem with the request
func (r *CreateUserRequest) Validate() error {
	var problems []string

	name := strings.TrimSpace(r.Name)
	switch n := utf8.RuneCountInString(name); {
	case n < minNameLength || n > maxNameLength:
		problems = append(problems, fmt.Sprintf("name must be %d-%d characters", minNameLength, maxNameLength))
	case !namePattern.MatchString(name):
		problems = append(problems, "name contains invalid characters")
	}

	if r.Age < minAge || r.Age > maxAge {
		problems = append(problems, fmt.Sprintf("age must be between %d and %d", minAge, maxAge))
	}

	if !validGenders[r.Gender] {
		problems = append(problems, "gender must be male, female or other")
	}

	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxBioLength {
		problems = append(problems, fmt.Sprintf("bio must be at most %d characters", maxBioLength))
	}

	email := strings.TrimSpace(r.Email)
	if len(email) > maxEmailLength {
		problems = append(problems, fmt.Sprintf("email must be at most %d characters", maxEmailLength))
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		problems = append(problems, "email is invalid")
	}

	if r.AvatarURL != nil && *r.AvatarURL != "" {
		u, err := url.Parse(*r.AvatarURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, "avatar_url must be an http(s) URL")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// CreateUser validates and stores a new profile
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		Gender:    req.Gender,
		Bio:       req.Bio,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		AvatarURL: req.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.AvatarURL != nil && *user.AvatarURL == "" {
		user.AvatarURL = nil
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%s: %w", user.Email, ErrEmailTaken)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// ListUsers returns every profile, newest first
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a profile by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetUserByEmail is the lookup used in place of a login
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
