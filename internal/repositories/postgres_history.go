package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/db"
)

// PostgresWatchHistoryRepository persists watch history entries.
type PostgresWatchHistoryRepository struct {
	pool db.Pool
}

// NewPostgresWatchHistoryRepository constructs a watch history repository backed by PostgreSQL.
func NewPostgresWatchHistoryRepository(pool db.Pool) *PostgresWatchHistoryRepository {
	return &PostgresWatchHistoryRepository{pool: pool}
}

// Record upserts the (user, video) pair so re-watching moves the entry to the
// front of the history.
func (r *PostgresWatchHistoryRepository) Record(ctx context.Context, userID, videoID string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        INSERT INTO watch_history (user_id, video_id, watched_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, video_id)
        DO UPDATE SET watched_at = EXCLUDED.watched_at
    `, userID, videoID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert watch history: %w", err)
	}

	return nil
}

var _ WatchHistoryRepository = (*PostgresWatchHistoryRepository)(nil)
