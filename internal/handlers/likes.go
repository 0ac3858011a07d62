package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// LikeHandler implements like toggles across videos, comments and tweets.
type LikeHandler struct {
	Likes    LikeStore
	Views    LikeViews
	Videos   VideoStore
	Comments CommentStore
	Tweets   TweetStore
}

type toggleLikeResponse struct {
	TargetID   string `json:"targetId"`
	Liked      bool   `json:"liked"`
	TotalLikes int64  `json:"totalLikes"`
}

// ToggleVideo handles POST /api/v1/likes/toggle/v/{videoId}.
func (h LikeHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}
	h.toggle(w, r, models.LikeTarget{Type: models.LikeTargetVideo, ID: videoID}, func(ctx context.Context) error {
		_, err := h.Videos.FindByID(ctx, videoID)
		return err
	})
}

// ToggleComment handles POST /api/v1/likes/toggle/c/{commentId}.
func (h LikeHandler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return
	}
	h.toggle(w, r, models.LikeTarget{Type: models.LikeTargetComment, ID: commentID}, func(ctx context.Context) error {
		_, err := h.Comments.FindByID(ctx, commentID)
		return err
	})
}

// ToggleTweet handles POST /api/v1/likes/toggle/t/{tweetId}.
func (h LikeHandler) ToggleTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return
	}
	h.toggle(w, r, models.LikeTarget{Type: models.LikeTargetTweet, ID: tweetID}, func(ctx context.Context) error {
		_, err := h.Tweets.FindByID(ctx, tweetID)
		return err
	})
}

// LikedVideos handles GET /api/v1/likes/videos.
func (h LikeHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	videos, err := h.Views.LikedVideos(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load liked videos", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load liked videos")
		return
	}

	respondData(ctx, w, http.StatusOK, videos, "liked videos")
}

func (h LikeHandler) toggle(w http.ResponseWriter, r *http.Request, target models.LikeTarget, exists func(context.Context) error) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	if err := exists(ctx); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, string(target.Type)+" not found")
			return
		}
		logger.Error("load like target", "error", err, "targetType", target.Type, "targetId", target.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to toggle like")
		return
	}

	liked, err := h.Likes.Toggle(ctx, userID, target)
	if err != nil {
		logger.Error("toggle like", "error", err, "targetType", target.Type, "targetId", target.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to toggle like")
		return
	}

	total, err := h.Likes.Count(ctx, target)
	if err != nil {
		logger.Error("count likes", "error", err, "targetType", target.Type, "targetId", target.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to count likes")
		return
	}

	respondData(ctx, w, http.StatusOK, toggleLikeResponse{
		TargetID:   target.ID,
		Liked:      liked,
		TotalLikes: total,
	}, "like toggled")
}
