package app

import (
	"context"
	"log/slog"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/auth"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/config"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/db"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/handlers"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/media"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/middleware"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/storage"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/views"
)

// buildDependencies wires together concrete implementations used by the HTTP
// handlers. The returned cleaner must be shut down when the server stops.
func buildDependencies(ctx context.Context, pool db.Pool, cfg config.Config, logger *slog.Logger) (handlers.Dependencies, *media.Cleaner, error) {
	blobStore, err := storage.NewS3Storage(ctx, cfg.ObjectStore)
	if err != nil {
		return handlers.Dependencies{}, nil, err
	}

	cleaner := media.NewCleaner(blobStore, media.CleanerConfig{
		QueueSize: cfg.CleanerQueueSize,
		Workers:   cfg.CleanerWorkers,
	}, logger)

	sessionStore := repositories.NewPostgresSessionStore(pool)
	aggregator := views.NewAggregator(pool, cfg.StatsCacheTTL)

	deps := handlers.Dependencies{
		Users:         repositories.NewPostgresUserRepository(pool),
		Sessions:      auth.NewManager(cfg.AccessTokenTTL, cfg.RefreshTokenTTL, sessionStore),
		Videos:        repositories.NewPostgresVideoRepository(pool),
		Comments:      repositories.NewPostgresCommentRepository(pool),
		Tweets:        repositories.NewPostgresTweetRepository(pool),
		Playlists:     repositories.NewPostgresPlaylistRepository(pool),
		Likes:         repositories.NewPostgresLikeRepository(pool),
		Subscriptions: repositories.NewPostgresSubscriptionRepository(pool),
		History:       repositories.NewPostgresWatchHistoryRepository(pool),

		UserViews:         aggregator,
		VideoViews:        aggregator,
		CommentViews:      aggregator,
		TweetViews:        aggregator,
		PlaylistViews:     aggregator,
		SubscriptionViews: aggregator,
		LikeViews:         aggregator,
		DashboardViews:    aggregator,

		Storage: blobStore,
		Cleaner: cleaner,
		Prober:  media.NewFFProbe(cfg.FFprobePath, cfg.FFprobeTimeout),

		AuthLimiter: middleware.NewIPRateLimiter(
			cfg.AuthRateLimit.Requests,
			cfg.AuthRateLimit.Window,
			cfg.AuthRateLimit.Burst,
			cfg.AuthRateLimit.TTL,
		),
	}

	return deps, cleaner, nil
}
