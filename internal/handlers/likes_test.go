package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
)

func toggleVideoLike(t *testing.T, handler LikeHandler, userID, videoID string) (*httptest.ResponseRecorder, toggleLikeResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID, nil)
	req.SetPathValue("videoId", videoID)
	req = authedRequest(req, userID)
	rec := httptest.NewRecorder()

	handler.ToggleVideo(rec, req)

	var resp struct {
		Data toggleLikeResponse `json:"data"`
	}
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, resp.Data
}

func TestLikeHandlerToggleVideoRoundTrip(t *testing.T) {
	videos := newInMemoryVideoStore()
	videos.videos["aaaaaaaa-0000-0000-0000-000000000001"] = models.Video{ID: "aaaaaaaa-0000-0000-0000-000000000001", OwnerID: "22222222-2222-2222-2222-222222222222"}
	handler := LikeHandler{Likes: newInMemoryLikeStore(), Videos: videos}

	rec, resp := toggleVideoLike(t, handler, "11111111-1111-1111-1111-111111111111", "aaaaaaaa-0000-0000-0000-000000000001")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
	if !resp.Liked || resp.TotalLikes != 1 || resp.TargetID != "aaaaaaaa-0000-0000-0000-000000000001" {
		t.Fatalf("expected first toggle to like, got %+v", resp)
	}

	rec, resp = toggleVideoLike(t, handler, "11111111-1111-1111-1111-111111111111", "aaaaaaaa-0000-0000-0000-000000000001")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
	if resp.Liked || resp.TotalLikes != 0 {
		t.Fatalf("expected second toggle to unlike, got %+v", resp)
	}
}

func TestLikeHandlerCountsAcrossUsers(t *testing.T) {
	videos := newInMemoryVideoStore()
	videos.videos["aaaaaaaa-0000-0000-0000-000000000001"] = models.Video{ID: "aaaaaaaa-0000-0000-0000-000000000001", OwnerID: "99999999-9999-9999-9999-999999999999"}
	handler := LikeHandler{Likes: newInMemoryLikeStore(), Videos: videos}

	toggleVideoLike(t, handler, "11111111-1111-1111-1111-111111111111", "aaaaaaaa-0000-0000-0000-000000000001")
	_, resp := toggleVideoLike(t, handler, "22222222-2222-2222-2222-222222222222", "aaaaaaaa-0000-0000-0000-000000000001")

	if resp.TotalLikes != 2 {
		t.Fatalf("expected two likes, got %d", resp.TotalLikes)
	}
}

func TestLikeHandlerToggleUnknownTargets(t *testing.T) {
	handler := LikeHandler{
		Likes:    newInMemoryLikeStore(),
		Videos:   newInMemoryVideoStore(),
		Comments: newInMemoryCommentStore(),
		Tweets:   newInMemoryTweetStore(),
	}

	cases := []struct {
		name      string
		target    string
		pathKey   string
		serve     func(http.ResponseWriter, *http.Request)
		wantError string
	}{
		{"video", "/api/v1/likes/toggle/v/ffffffff-0000-0000-0000-000000000009", "videoId", handler.ToggleVideo, "video not found"},
		{"comment", "/api/v1/likes/toggle/c/ffffffff-0000-0000-0000-000000000009", "commentId", handler.ToggleComment, "comment not found"},
		{"tweet", "/api/v1/likes/toggle/t/ffffffff-0000-0000-0000-000000000009", "tweetId", handler.ToggleTweet, "tweet not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			req.SetPathValue(tc.pathKey, "ffffffff-0000-0000-0000-000000000009")
			req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
			rec := httptest.NewRecorder()

			tc.serve(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected status %d got %d", http.StatusNotFound, rec.Code)
			}

			var resp struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Message != tc.wantError {
				t.Fatalf("expected message %q got %q", tc.wantError, resp.Message)
			}
		})
	}
}

func TestLikeHandlerRejectsMalformedTarget(t *testing.T) {
	handler := LikeHandler{Likes: newInMemoryLikeStore(), Videos: newInMemoryVideoStore()}

	rec, _ := toggleVideoLike(t, handler, "11111111-1111-1111-1111-111111111111", "not-a-uuid")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for malformed videoId, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestLikeHandlerCountFailureIsServerError(t *testing.T) {
	videos := newInMemoryVideoStore()
	videos.videos["aaaaaaaa-0000-0000-0000-000000000001"] = models.Video{ID: "aaaaaaaa-0000-0000-0000-000000000001"}
	likes := newInMemoryLikeStore()
	likes.countErr = errors.New("count query failed")
	handler := LikeHandler{Likes: likes, Videos: videos}

	rec, _ := toggleVideoLike(t, handler, "11111111-1111-1111-1111-111111111111", "aaaaaaaa-0000-0000-0000-000000000001")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d when the count fails, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestLikeHandlerToggleCommentAndTweet(t *testing.T) {
	comments := newInMemoryCommentStore()
	comments.comments["bbbbbbbb-0000-0000-0000-000000000001"] = models.Comment{ID: "bbbbbbbb-0000-0000-0000-000000000001"}
	tweets := newInMemoryTweetStore()
	tweets.tweets["cccccccc-0000-0000-0000-000000000001"] = models.Tweet{ID: "cccccccc-0000-0000-0000-000000000001"}
	handler := LikeHandler{Likes: newInMemoryLikeStore(), Comments: comments, Tweets: tweets}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/c/bbbbbbbb-0000-0000-0000-000000000001", nil)
	req.SetPathValue("commentId", "bbbbbbbb-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()
	handler.ToggleComment(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/t/cccccccc-0000-0000-0000-000000000001", nil)
	req.SetPathValue("tweetId", "cccccccc-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec = httptest.NewRecorder()
	handler.ToggleTweet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	if len(handler.Likes.(*inMemoryLikeStore).likes) != 2 {
		t.Fatalf("expected likes on both targets")
	}
}
