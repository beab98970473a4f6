package repository

import (
	"context"
	"fmt"
	"time"

	"mini-dating-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slotSelect = `
	SELECT id, user_id, match_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, created_at
	FROM availabilities
`

// AvailabilityRepository persists availability slots.
// Reads are always ordered by date, then start time.
type AvailabilityRepository struct {
	db *pgxpool.Pool
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Replace deletes every slot stored for (userID, matchID) and inserts slots
// in their place, in one transaction.
func (r *AvailabilityRepository) Replace(ctx context.Context, userID, matchID string, slots []models.TimeSlot) ([]models.TimeSlot, error) {
	now := time.Now()
	saved := make([]models.TimeSlot, len(slots))
	for i, s := range slots {
		saved[i] = models.TimeSlot{
			ID:        uuid.New().String(),
			UserID:    userID,
			MatchID:   matchID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			CreatedAt: now,
		}
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM availabilities WHERE user_id = $1 AND match_id = $2`, userID, matchID)
		if err != nil {
			return fmt.Errorf("failed to delete availability: %w", err)
		}

		batch := &pgx.Batch{}
		for _, s := range saved {
			batch.Queue(`
				INSERT INTO availabilities (id, user_id, match_id, date, start_time, end_time, created_at)
				VALUES ($1, $2, $3, $4::date, $5, $6, $7)
			`, s.ID, s.UserID, s.MatchID, s.Date, s.StartTime, s.EndTime, s.CreatedAt)
		}

		br := tx.SendBatch(ctx, batch)
		for range saved {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert availability: %w", err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetForMatch retrieves a user's slots for one match
func (r *AvailabilityRepository) GetForMatch(ctx context.Context, userID, matchID string) ([]models.TimeSlot, error) {
	query := slotSelect + `
		WHERE user_id = $1 AND match_id = $2
		ORDER BY date ASC, start_time ASC
	`
	return r.list(ctx, query, userID, matchID)
}

// GetAllForUser retrieves a user's slots across every match
func (r *AvailabilityRepository) GetAllForUser(ctx context.Context, userID string) ([]models.TimeSlot, error) {
	query := slotSelect + `
		WHERE user_id = $1
		ORDER BY date ASC, start_time ASC
	`
	return r.list(ctx, query, userID)
}

func (r *AvailabilityRepository) list(ctx context.Context, query string, args ...any) ([]models.TimeSlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	defer rows.Close()

	slots := []models.TimeSlot{}
	for rows.Next() {
		var s models.TimeSlot
		err := rows.Scan(&s.ID, &s.UserID, &s.MatchID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}
	return slots, nil
}
