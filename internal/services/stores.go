package services

import (
	"context"
	"errors"

	"mini-dating-backend/internal/models"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrSelfLike             = errors.New("cannot like yourself")
	ErrAlreadyLiked         = errors.New("already liked this user")
	ErrEmailTaken           = errors.New("email already registered")
	ErrAvatarUploadDisabled = errors.New("avatar upload is not configured")
	ErrAvatarNotUploaded    = errors.New("avatar has not been uploaded")
)

// The interfaces below are satisfied by the repository package and by
// in-memory fakes in tests.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
	Exists(ctx context.Context, fromUserID, toUserID string) (bool, error)
	ListGiven(ctx context.Context, userID string) ([]*models.Like, error)
	ListReceived(ctx context.Context, userID string) ([]*models.Like, error)
}

// MatchStore covers match lookup and the schedule recorder
type MatchStore interface {
	CreateIfNotExists(ctx context.Context, match *models.Match) (*models.Match, bool, error)
	GetByID(ctx context.Context, id string) (*models.Match, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Match, error)
	UpdateSchedule(ctx context.Context, matchID, date, startTime, endTime string) error
}

// SlotStore persists availability. Reads return slots ordered by date,
// then start time.
type SlotStore interface {
	Replace(ctx context.Context, userID, matchID string, slots []models.TimeSlot) ([]models.TimeSlot, error)
	GetForMatch(ctx context.Context, userID, matchID string) ([]models.TimeSlot, error)
	GetAllForUser(ctx context.Context, userID string) ([]models.TimeSlot, error)
}

// ValidationError lists every problem found in a request
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	return "validation failed"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
