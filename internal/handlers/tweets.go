package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// TweetHandler implements the tweet endpoints.
type TweetHandler struct {
	Tweets  TweetStore
	Views   TweetViews
	NowFunc func() time.Time
}

type tweetResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTweetResponse(tweet models.Tweet) tweetResponse {
	return tweetResponse{
		ID:        tweet.ID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
}

// Create handles POST /api/v1/tweets.
func (h TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respondError(ctx, w, http.StatusBadRequest, "content is required")
		return
	}

	now := h.now()
	tweet := models.Tweet{
		ID:        uuid.NewString(),
		OwnerID:   CurrentUserID(ctx),
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.Tweets.Create(ctx, tweet); err != nil {
		logging.FromContext(ctx).Error("create tweet", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "unable to create tweet")
		return
	}

	respondData(ctx, w, http.StatusCreated, newTweetResponse(tweet), "tweet created")
}

// ListForUser handles GET /api/v1/tweets/user/{userId} with page and limit
// parameters.
func (h TweetHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	q := r.URL.Query()
	tweets, err := h.Views.TweetsForUser(ctx, userID, pageParamsFrom(q.Get("page"), q.Get("limit")))
	if err != nil {
		logging.FromContext(ctx).Error("load tweets", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load tweets")
		return
	}

	respondData(ctx, w, http.StatusOK, tweets, "tweets")
}

// Update handles PATCH /api/v1/tweets/{tweetId}.
func (h TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respondError(ctx, w, http.StatusBadRequest, "content is required")
		return
	}

	tweet, ok := h.loadOwnedTweet(w, r)
	if !ok {
		return
	}

	if err := h.Tweets.UpdateContent(ctx, tweet.ID, req.Content); err != nil {
		logging.FromContext(ctx).Error("update tweet", "error", err, "tweetId", tweet.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update tweet")
		return
	}

	tweet.Content = req.Content
	tweet.UpdatedAt = h.now()
	respondData(ctx, w, http.StatusOK, newTweetResponse(tweet), "tweet updated")
}

// Delete handles DELETE /api/v1/tweets/{tweetId}.
func (h TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tweet, ok := h.loadOwnedTweet(w, r)
	if !ok {
		return
	}

	if err := h.Tweets.Delete(ctx, tweet.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logging.FromContext(ctx).Error("delete tweet", "error", err, "tweetId", tweet.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to delete tweet")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "tweet deleted")
}

func (h TweetHandler) loadOwnedTweet(w http.ResponseWriter, r *http.Request) (models.Tweet, bool) {
	ctx := r.Context()
	tweetID, ok := pathID(w, r, "tweetId")
	if !ok {
		return models.Tweet{}, false
	}

	tweet, err := h.Tweets.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "tweet not found")
			return models.Tweet{}, false
		}
		logging.FromContext(ctx).Error("load tweet", "error", err, "tweetId", tweetID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load tweet")
		return models.Tweet{}, false
	}

	if tweet.OwnerID != CurrentUserID(ctx) {
		respondError(ctx, w, http.StatusForbidden, "only the author may modify this tweet")
		return models.Tweet{}, false
	}

	return tweet, true
}

func (h TweetHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}
