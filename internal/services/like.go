package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/repository"

	"github.com/google/uuid"
)

// LikeService records likes and turns mutual likes into matches
type LikeService struct {
	likes   LikeStore
	users   UserStore
	matches MatchStore
}

// NewLikeService creates a new like service
func NewLikeService(likes LikeStore, users UserStore, matches MatchStore) *LikeService {
	return &LikeService{
		likes:   likes,
		users:   users,
		matches: matches,
	}
}

// LikeResult is returned after a like is recorded
type LikeResult struct {
	Like    *models.Like  `json:"like"`
	IsMatch bool          `json:"is_match"`
	Match   *models.Match `json:"match,omitempty"`
}

// Like records that fromUserID likes toUserID. When the other side already
// liked back, the pair becomes a match.
func (s *LikeService) Like(ctx context.Context, fromUserID, toUserID string) (*LikeResult, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfLike
	}

	for _, id := range []string{fromUserID, toUserID} {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	exists, err := s.likes.Exists(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	like := &models.Like{
		ID:         uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CreatedAt:  time.Now(),
	}
	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	mutual, err := s.likes.Exists(ctx, toUserID, fromUserID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return &LikeResult{Like: like}, nil
	}

	// user_a_id sorts first so a pair maps to exactly one row
	userAID, userBID := fromUserID, toUserID
	if userAID > userBID {
		userAID, userBID = userBID, userAID
	}

	match, _, err := s.matches.CreateIfNotExists(ctx, &models.Match{
		ID:        uuid.New().String(),
		UserAID:   userAID,
		UserBID:   userBID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return &LikeResult{Like: like, IsMatch: true, Match: match}, nil
}

// LikesGiven lists likes sent by a user
func (s *LikeService) LikesGiven(ctx context.Context, userID string) ([]*models.Like, error) {
	return s.likes.ListGiven(ctx, userID)
}

// LikesReceived lists likes sent to a user
func (s *LikeService) LikesReceived(ctx context.Context, userID string) ([]*models.Like, error) {
	return s.likes.ListReceived(ctx, userID)
}

// HasLiked reports whether fromUserID has liked toUserID
func (s *LikeService) HasLiked(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	return s.likes.Exists(ctx, fromUserID, toUserID)
}
