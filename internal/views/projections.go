package views

import "time"

// Profile is the embedded owner shape attached to videos, comments, tweets,
// and playlists.
type Profile struct {
	ID          string `json:"id"`
	Handle      string `json:"username"`
	DisplayName string `json:"fullName"`
	AvatarURL   string `json:"avatar"`
}

// ChannelProfile is the public channel page for a user, annotated with
// subscription counts and the viewer's own subscription state.
type ChannelProfile struct {
	ID               string `json:"id"`
	Handle           string `json:"username"`
	DisplayName      string `json:"fullName"`
	Email            string `json:"email"`
	AvatarURL        string `json:"avatar"`
	CoverURL         string `json:"coverImage"`
	SubscriberCount  int64  `json:"subscribersCount"`
	SubscribedCount  int64  `json:"channelsSubscribedToCount"`
	ViewerSubscribed bool   `json:"isSubscribed"`
}

// VideoView is a video with its owner profile attached.
type VideoView struct {
	ID           string    `json:"id"`
	FileURL      string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	Published    bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	Owner        Profile   `json:"createdBy"`
}

// CommentView is a comment with its author profile attached.
type CommentView struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     Profile   `json:"createdBy"`
}

// TweetView is a tweet with its author profile attached.
type TweetView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     Profile   `json:"createdBy"`
}

// PlaylistView is a playlist with its owner profile and member videos
// attached. Videos keep insertion order.
type PlaylistView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Owner       *Profile    `json:"createdBy,omitempty"`
	Videos      []VideoView `json:"videos"`
}

// ChannelMember is a row in a subscriber or subscribed-channels listing.
type ChannelMember struct {
	ID          string `json:"id"`
	Handle      string `json:"username"`
	DisplayName string `json:"fullName"`
	AvatarURL   string `json:"avatar"`
}

// ChannelStats summarizes a channel for the creator dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
}
