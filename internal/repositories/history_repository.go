package repositories

import "context"

// WatchHistoryRepository records which videos a user has watched.
type WatchHistoryRepository interface {
	// Record upserts the (user, video) pair, refreshing its watched-at time
	// so the history stays ordered most-recent-first.
	Record(ctx context.Context, userID, videoID string) error
}
