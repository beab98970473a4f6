package repository

import (
	"context"
	"fmt"

	"mini-dating-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository handles database operations for likes
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create creates a new like
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, from_user_id, to_user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, like.ID, like.FromUserID, like.ToUserID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("like %s -> %s: %w", like.FromUserID, like.ToUserID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Exists checks if fromUserID has liked toUserID
func (r *LikeRepository) Exists(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE from_user_id = $1 AND to_user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, fromUserID, toUserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

// ListGiven retrieves likes sent by a user with the liked user's profile
func (r *LikeRepository) ListGiven(ctx context.Context, userID string) ([]*models.Like, error) {
	query := `
		SELECT l.id, l.from_user_id, l.to_user_id, l.created_at, ` + qualifiedUserColumns("u") + `
		FROM likes l
		JOIN users u ON u.id = l.to_user_id
		WHERE l.from_user_id = $1
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, userID, func(l *models.Like, u *models.User) { l.ToUser = u })
}

// ListReceived retrieves likes sent to a user with the liker's profile
func (r *LikeRepository) ListReceived(ctx context.Context, userID string) ([]*models.Like, error) {
	query := `
		SELECT l.id, l.from_user_id, l.to_user_id, l.created_at, ` + qualifiedUserColumns("u") + `
		FROM likes l
		JOIN users u ON u.id = l.from_user_id
		WHERE l.to_user_id = $1
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, userID, func(l *models.Like, u *models.User) { l.FromUser = u })
}

func (r *LikeRepository) list(
	ctx context.Context,
	query, userID string,
	attach func(*models.Like, *models.User),
) ([]*models.Like, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}
	defer rows.Close()

	likes := []*models.Like{}
	for rows.Next() {
		var like models.Like
		var user models.User
		dest := append([]any{&like.ID, &like.FromUserID, &like.ToUserID, &like.CreatedAt}, userDest(&user)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		attach(&like, &user)
		likes = append(likes, &like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}
	return likes, nil
}
