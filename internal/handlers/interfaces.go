package handlers

import (
	"context"
	"io"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/views"
)

// UserStore captures the persistence operations required by the user handlers.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByLogin(ctx context.Context, identifier string) (models.User, error)
	UpdateAccount(ctx context.Context, user models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
	UpdateCover(ctx context.Context, id, coverURL string) error
}

// SessionManager issues, resolves and revokes authentication tokens.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (models.SessionTokens, error)
	Identify(ctx context.Context, accessToken string) (string, error)
	Refresh(ctx context.Context, refreshToken string) (models.SessionTokens, error)
	Revoke(ctx context.Context, refreshToken string)
	RevokeAll(ctx context.Context, userID string) error
}

// VideoStore captures write-side persistence for videos.
type VideoStore interface {
	Create(ctx context.Context, video models.Video) error
	FindByID(ctx context.Context, id string) (models.Video, error)
	Update(ctx context.Context, video models.Video) error
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementViews(ctx context.Context, id string) error
}

// CommentStore captures write-side persistence for comments.
type CommentStore interface {
	Create(ctx context.Context, comment models.Comment) error
	FindByID(ctx context.Context, id string) (models.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}

// TweetStore captures write-side persistence for tweets.
type TweetStore interface {
	Create(ctx context.Context, tweet models.Tweet) error
	FindByID(ctx context.Context, id string) (models.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}

// PlaylistStore captures write-side persistence for playlists.
type PlaylistStore interface {
	Create(ctx context.Context, playlist models.Playlist) error
	FindByID(ctx context.Context, id string) (models.Playlist, error)
	Update(ctx context.Context, playlist models.Playlist) error
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}

// LikeStore toggles and counts likes.
type LikeStore interface {
	Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error)
	Count(ctx context.Context, target models.LikeTarget) (int64, error)
}

// SubscriptionStore toggles subscriptions between users.
type SubscriptionStore interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
}

// WatchHistoryStore records watched videos.
type WatchHistoryStore interface {
	Record(ctx context.Context, userID, videoID string) error
}

// BlobStorage persists uploaded media and serves back a public location.
type BlobStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, location string) error
}

// BlobCleaner schedules background deletion of replaced blobs.
type BlobCleaner interface {
	Enqueue(ctx context.Context, location string) error
}

// DurationProber measures the playable length of an uploaded media file.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// UserViews captures the read-model queries behind the user endpoints.
type UserViews interface {
	ChannelProfile(ctx context.Context, handle, viewerID string) (views.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]views.VideoView, error)
}

// VideoViews captures the read-model queries behind the video endpoints.
type VideoViews interface {
	VideoFeed(ctx context.Context, params views.FeedParams) ([]views.VideoView, error)
	VideoByID(ctx context.Context, videoID string) (views.VideoView, error)
}

// CommentViews lists comment projections for a video.
type CommentViews interface {
	CommentsForVideo(ctx context.Context, videoID string, page views.PageParams) ([]views.CommentView, error)
}

// TweetViews lists tweet projections for a user.
type TweetViews interface {
	TweetsForUser(ctx context.Context, userID string, page views.PageParams) ([]views.TweetView, error)
}

// PlaylistViews captures the read-model queries behind the playlist endpoints.
type PlaylistViews interface {
	PlaylistByID(ctx context.Context, playlistID string) (views.PlaylistView, error)
	PlaylistsForUser(ctx context.Context, ownerID string) ([]views.PlaylistView, error)
}

// SubscriptionViews lists subscriber and subscribed-channel projections.
type SubscriptionViews interface {
	Subscribers(ctx context.Context, channelID string) ([]views.ChannelMember, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]views.ChannelMember, error)
}

// LikeViews lists liked-video projections.
type LikeViews interface {
	LikedVideos(ctx context.Context, userID string) ([]views.VideoView, error)
}

// DashboardViews captures the read-model queries behind the dashboard.
type DashboardViews interface {
	ChannelStats(ctx context.Context, channelID string) (views.ChannelStats, error)
	ChannelVideos(ctx context.Context, ownerID string) ([]views.VideoView, error)
}
