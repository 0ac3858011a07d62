package handlers

import "net/http"

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Users         UserStore
	Sessions      SessionManager
	Videos        VideoStore
	Comments      CommentStore
	Tweets        TweetStore
	Playlists     PlaylistStore
	Likes         LikeStore
	Subscriptions SubscriptionStore
	History       WatchHistoryStore

	UserViews         UserViews
	VideoViews        VideoViews
	CommentViews      CommentViews
	TweetViews        TweetViews
	PlaylistViews     PlaylistViews
	SubscriptionViews SubscriptionViews
	LikeViews         LikeViews
	DashboardViews    DashboardViews

	Storage BlobStorage
	Cleaner BlobCleaner
	Prober  DurationProber

	AuthLimiter RateLimiter
}

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	users := UserHandler{
		Users:    deps.Users,
		Sessions: deps.Sessions,
		Views:    deps.UserViews,
		Storage:  deps.Storage,
		Cleaner:  deps.Cleaner,
	}
	videos := VideoHandler{
		Videos:  deps.Videos,
		Views:   deps.VideoViews,
		History: deps.History,
		Storage: deps.Storage,
		Prober:  deps.Prober,
		Cleaner: deps.Cleaner,
	}
	comments := CommentHandler{Comments: deps.Comments, Videos: deps.Videos, Views: deps.CommentViews}
	tweets := TweetHandler{Tweets: deps.Tweets, Views: deps.TweetViews}
	likes := LikeHandler{
		Likes:    deps.Likes,
		Views:    deps.LikeViews,
		Videos:   deps.Videos,
		Comments: deps.Comments,
		Tweets:   deps.Tweets,
	}
	playlists := PlaylistHandler{Playlists: deps.Playlists, Videos: deps.Videos, Views: deps.PlaylistViews}
	subscriptions := SubscriptionHandler{
		Subscriptions: deps.Subscriptions,
		Views:         deps.SubscriptionViews,
		Users:         deps.Users,
	}
	dashboard := DashboardHandler{Views: deps.DashboardViews}

	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return RequireAuth(deps.Sessions, next)
	}
	limited := func(scope string, next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !allowRequest(deps.AuthLimiter, r, scope) {
				respondError(r.Context(), w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("GET /healthz", health.Handle)
	mux.HandleFunc("GET /api/v1/healthcheck", health.Handle)

	mux.HandleFunc("POST /api/v1/users/register", limited("register", users.Register))
	mux.HandleFunc("POST /api/v1/users/login", limited("login", users.Login))
	mux.HandleFunc("POST /api/v1/users/refresh-token", users.RefreshToken)
	mux.HandleFunc("POST /api/v1/users/logout", guard(users.Logout))
	mux.HandleFunc("POST /api/v1/users/change-password", guard(users.ChangePassword))
	mux.HandleFunc("GET /api/v1/users/current", guard(users.CurrentUser))
	mux.HandleFunc("GET /api/v1/users/channel/{username}", guard(users.ChannelProfile))
	// Abbreviated forms kept for clients built against the first release.
	mux.HandleFunc("GET /api/v1/users/current-user", guard(users.CurrentUser))
	mux.HandleFunc("GET /api/v1/users/c/{username}", guard(users.ChannelProfile))
	mux.HandleFunc("GET /api/v1/users/history", guard(users.WatchHistory))
	mux.HandleFunc("PATCH /api/v1/users/update-account", guard(users.UpdateAccount))
	mux.HandleFunc("PATCH /api/v1/users/avatar", guard(users.UpdateAvatar))
	mux.HandleFunc("PATCH /api/v1/users/cover-image", guard(users.UpdateCoverImage))

	mux.HandleFunc("GET /api/v1/videos", guard(videos.Feed))
	mux.HandleFunc("POST /api/v1/videos", guard(videos.Publish))
	mux.HandleFunc("GET /api/v1/videos/{videoId}", guard(videos.Get))
	mux.HandleFunc("PATCH /api/v1/videos/{videoId}", guard(videos.Update))
	mux.HandleFunc("DELETE /api/v1/videos/{videoId}", guard(videos.Delete))
	mux.HandleFunc("PATCH /api/v1/videos/toggle/publish/{videoId}", guard(videos.TogglePublish))

	mux.HandleFunc("GET /api/v1/comments/{videoId}", guard(comments.List))
	mux.HandleFunc("POST /api/v1/comments/{videoId}", guard(comments.Add))
	mux.HandleFunc("PATCH /api/v1/comments/c/{commentId}", guard(comments.Update))
	mux.HandleFunc("DELETE /api/v1/comments/c/{commentId}", guard(comments.Delete))
	mux.HandleFunc("PATCH /api/v1/comments/{commentId}", guard(comments.Update))
	mux.HandleFunc("DELETE /api/v1/comments/{commentId}", guard(comments.Delete))

	mux.HandleFunc("POST /api/v1/tweets", guard(tweets.Create))
	mux.HandleFunc("GET /api/v1/tweets/user/{userId}", guard(tweets.ListForUser))
	mux.HandleFunc("PATCH /api/v1/tweets/{tweetId}", guard(tweets.Update))
	mux.HandleFunc("DELETE /api/v1/tweets/{tweetId}", guard(tweets.Delete))

	mux.HandleFunc("POST /api/v1/likes/toggle/v/{videoId}", guard(likes.ToggleVideo))
	mux.HandleFunc("POST /api/v1/likes/toggle/c/{commentId}", guard(likes.ToggleComment))
	mux.HandleFunc("POST /api/v1/likes/toggle/t/{tweetId}", guard(likes.ToggleTweet))
	mux.HandleFunc("GET /api/v1/likes/videos", guard(likes.LikedVideos))

	mux.HandleFunc("POST /api/v1/playlist", guard(playlists.Create))
	mux.HandleFunc("GET /api/v1/playlist/user/{userId}", guard(playlists.ListForUser))
	mux.HandleFunc("GET /api/v1/playlist/{playlistId}", guard(playlists.Get))
	mux.HandleFunc("PATCH /api/v1/playlist/{playlistId}", guard(playlists.Update))
	mux.HandleFunc("DELETE /api/v1/playlist/{playlistId}", guard(playlists.Delete))
	mux.HandleFunc("PATCH /api/v1/playlist/add/{videoId}/{playlistId}", guard(playlists.AddVideo))
	mux.HandleFunc("PATCH /api/v1/playlist/remove/{videoId}/{playlistId}", guard(playlists.RemoveVideo))

	mux.HandleFunc("POST /api/v1/subscriptions/{channelId}", guard(subscriptions.Toggle))
	mux.HandleFunc("GET /api/v1/subscriptions/channel/{channelId}", guard(subscriptions.Subscribers))
	mux.HandleFunc("GET /api/v1/subscriptions/user/{subscriberId}", guard(subscriptions.SubscribedChannels))
	mux.HandleFunc("POST /api/v1/subscriptions/c/{channelId}", guard(subscriptions.Toggle))
	mux.HandleFunc("GET /api/v1/subscriptions/c/{channelId}", guard(subscriptions.Subscribers))
	mux.HandleFunc("GET /api/v1/subscriptions/u/{subscriberId}", guard(subscriptions.SubscribedChannels))

	mux.HandleFunc("GET /api/v1/dashboard/stats", guard(dashboard.Stats))
	mux.HandleFunc("GET /api/v1/dashboard/videos", guard(dashboard.Videos))
}
