package models

import "time"

// User represents an account and channel within the platform.
type User struct {
	ID          string
	Email       string
	Handle      string
	DisplayName string
	Password    string
	AvatarURL   string
	CoverURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Video stores a published upload along with its blob-store locations.
type Video struct {
	ID           string
	OwnerID      string
	FileURL      string
	ThumbnailURL string
	Title        string
	Description  string
	Duration     float64
	Views        int64
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment is a single comment left on a video.
type Comment struct {
	ID        string
	VideoID   string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tweet is a short text post attached to a user.
type Tweet struct {
	ID        string
	OwnerID   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikeTargetType discriminates what a like points at.
type LikeTargetType string

const (
	LikeTargetVideo   LikeTargetType = "video"
	LikeTargetComment LikeTargetType = "comment"
	LikeTargetTweet   LikeTargetType = "tweet"
)

// LikeTarget identifies the single entity a like references.
type LikeTarget struct {
	Type LikeTargetType
	ID   string
}

// Playlist groups an ordered set of video references under a name.
// VideoIDs preserves insertion order; a video appears at most once.
type Playlist struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	VideoIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subscription links a subscriber to the channel they follow.
type Subscription struct {
	ID           string
	ChannelID    string
	SubscriberID string
	CreatedAt    time.Time
}

// SessionTokens groups the bearer credentials issued to authenticated users.
type SessionTokens struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}
