package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/db"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
)

// PostgresLikeRepository provides PostgreSQL-backed persistence for likes.
type PostgresLikeRepository struct {
	pool db.Pool
}

// NewPostgresLikeRepository constructs a like repository backed by PostgreSQL.
func NewPostgresLikeRepository(pool db.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// Toggle inserts a like row for (user, target) or, when the unique constraint
// reports it already exists, deletes it instead. The conditional insert makes
// concurrent toggles converge on a single row rather than racing into
// duplicates.
func (r *PostgresLikeRepository) Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `
        INSERT INTO likes (id, user_id, target_type, target_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, target_type, target_id) DO NOTHING
    `, uuid.NewString(), userID, string(target.Type), target.ID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}

	if tag.RowsAffected() > 0 {
		return true, nil
	}

	if _, err := conn.Exec(ctx, `
        DELETE FROM likes
        WHERE user_id = $1 AND target_type = $2 AND target_id = $3
    `, userID, string(target.Type), target.ID); err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	return false, nil
}

// Count returns the number of likes recorded for the target.
func (r *PostgresLikeRepository) Count(ctx context.Context, target models.LikeTarget) (int64, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var count int64
	row := conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM likes WHERE target_type = $1 AND target_id = $2`,
		string(target.Type), target.ID)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	return count, nil
}

var _ LikeRepository = (*PostgresLikeRepository)(nil)
