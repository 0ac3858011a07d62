package views

import (
	"context"
	"fmt"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
)

// ChannelStats aggregates dashboard totals for the channel. TotalLikes counts
// likes received on the channel's videos, not likes the owner has given.
// Results are served from a short-lived cache when one is configured.
func (a *Aggregator) ChannelStats(ctx context.Context, channelID string) (ChannelStats, error) {
	if stats, ok := a.statsCache.get(channelID); ok {
		return stats, nil
	}

	ctx, span := logging.StartSpan(ctx, "views.ChannelStats")
	defer span.End()

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return ChannelStats{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT
            (SELECT COUNT(*) FROM videos v WHERE v.owner_id = $1),
            (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = $1),
            (SELECT COUNT(*) FROM likes l
             JOIN videos v ON v.id = l.target_id
             WHERE l.target_type = 'video' AND v.owner_id = $1),
            (SELECT COALESCE(SUM(v.views), 0) FROM videos v WHERE v.owner_id = $1)
    `, channelID)

	var stats ChannelStats
	if err := row.Scan(&stats.TotalVideos, &stats.TotalSubscribers, &stats.TotalLikes, &stats.TotalViews); err != nil {
		return ChannelStats{}, fmt.Errorf("select channel stats: %w", err)
	}

	a.statsCache.put(channelID, stats)
	return stats, nil
}
