package services

import (
	"context"

	"mini-dating-backend/internal/models"
)

// MatchService exposes read access to matches
type MatchService struct {
	matches MatchStore
}

// NewMatchService creates a new match service
func NewMatchService(matches MatchStore) *MatchService {
	return &MatchService{matches: matches}
}

// ListForUser returns the matches a user takes part in
func (s *MatchService) ListForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	return s.matches.ListByUserID(ctx, userID)
}

// GetMatch returns a match with both profiles
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	return s.matches.GetByID(ctx, matchID)
}
