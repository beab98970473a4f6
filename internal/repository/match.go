package repository

import (
	"context"
	"errors"
	"fmt"

	"mini-dating-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var matchSelect = `
	SELECT m.id, m.user_a_id, m.user_b_id,
		m.scheduled_date, m.scheduled_time_start, m.scheduled_time_end, m.created_at,
		` + qualifiedUserColumns("ua") + `,
		` + qualifiedUserColumns("ub") + `
	FROM matches m
	JOIN users ua ON ua.id = m.user_a_id
	JOIN users ub ON ub.id = m.user_b_id
`

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateIfNotExists inserts the match unless the same pair is already matched.
// It returns the stored match and whether this call created it.
func (r *MatchRepository) CreateIfNotExists(ctx context.Context, match *models.Match) (*models.Match, bool, error) {
	query := `
		INSERT INTO matches (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a_id, user_b_id) DO NOTHING
	`
	result, err := r.db.Exec(ctx, query, match.ID, match.UserAID, match.UserBID, match.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}
	created := result.RowsAffected() == 1

	stored, err := r.GetByPair(ctx, match.UserAID, match.UserBID)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// GetByID retrieves a match by ID together with both profiles
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	match, err := scanMatch(r.db.QueryRow(ctx, matchSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// GetByPair retrieves the match for an ordered user pair
func (r *MatchRepository) GetByPair(ctx context.Context, userAID, userBID string) (*models.Match, error) {
	query := matchSelect + ` WHERE m.user_a_id = $1 AND m.user_b_id = $2`
	match, err := scanMatch(r.db.QueryRow(ctx, query, userAID, userBID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("match %s/%s: %w", userAID, userBID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get match by pair: %w", err)
	}
	return match, nil
}

// ListByUserID retrieves every match a user takes part in, newest first
func (r *MatchRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Match, error) {
	query := matchSelect + `
		WHERE m.user_a_id = $1 OR m.user_b_id = $1
		ORDER BY m.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches by user id: %w", err)
	}
	defer rows.Close()

	matches := []*models.Match{}
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}
	return matches, nil
}

// UpdateSchedule stores the committed meeting window on a match
func (r *MatchRepository) UpdateSchedule(ctx context.Context, matchID, date, startTime, endTime string) error {
	query := `
		UPDATE matches
		SET scheduled_date = $1, scheduled_time_start = $2, scheduled_time_end = $3
		WHERE id = $4
	`
	result, err := r.db.Exec(ctx, query, date, startTime, endTime, matchID)
	if err != nil {
		return fmt.Errorf("failed to update match schedule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}
	return nil
}

func scanMatch(row pgx.Row) (*models.Match, error) {
	var match models.Match
	var userA, userB models.User
	dest := []any{
		&match.ID, &match.UserAID, &match.UserBID,
		&match.ScheduledDate, &match.ScheduledTimeStart, &match.ScheduledTimeEnd, &match.CreatedAt,
	}
	dest = append(dest, userDest(&userA)...)
	dest = append(dest, userDest(&userB)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	match.UserA = &userA
	match.UserB = &userB
	return &match, nil
}
