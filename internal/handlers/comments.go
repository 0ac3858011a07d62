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

// CommentHandler implements the comment endpoints for videos.
type CommentHandler struct {
	Comments CommentStore
	Videos   VideoStore
	Views    CommentViews
	NowFunc  func() time.Time
}

type commentResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCommentResponse(comment models.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// List handles GET /api/v1/comments/{videoId} with page and limit parameters.
func (h CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	q := r.URL.Query()
	comments, err := h.Views.CommentsForVideo(ctx, videoID, pageParamsFrom(q.Get("page"), q.Get("limit")))
	if err != nil {
		logging.FromContext(ctx).Error("load comments", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load comments")
		return
	}

	respondData(ctx, w, http.StatusOK, comments, "comments")
}

// Add handles POST /api/v1/comments/{videoId}.
func (h CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

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

	if _, err := h.Videos.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "video not found")
			return
		}
		logger.Error("load video", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to add comment")
		return
	}

	now := h.now()
	comment := models.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		OwnerID:   CurrentUserID(ctx),
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.Comments.Create(ctx, comment); err != nil {
		logger.Error("create comment", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to add comment")
		return
	}

	respondData(ctx, w, http.StatusCreated, newCommentResponse(comment), "comment added")
}

// Update handles PATCH /api/v1/comments/{commentId}.
func (h CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	comment, ok := h.loadOwnedComment(w, r)
	if !ok {
		return
	}

	if err := h.Comments.UpdateContent(ctx, comment.ID, req.Content); err != nil {
		logging.FromContext(ctx).Error("update comment", "error", err, "commentId", comment.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update comment")
		return
	}

	comment.Content = req.Content
	comment.UpdatedAt = h.now()
	respondData(ctx, w, http.StatusOK, newCommentResponse(comment), "comment updated")
}

// Delete handles DELETE /api/v1/comments/{commentId}.
func (h CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comment, ok := h.loadOwnedComment(w, r)
	if !ok {
		return
	}

	if err := h.Comments.Delete(ctx, comment.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logging.FromContext(ctx).Error("delete comment", "error", err, "commentId", comment.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to delete comment")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "comment deleted")
}

func (h CommentHandler) loadOwnedComment(w http.ResponseWriter, r *http.Request) (models.Comment, bool) {
	ctx := r.Context()
	commentID, ok := pathID(w, r, "commentId")
	if !ok {
		return models.Comment{}, false
	}

	comment, err := h.Comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "comment not found")
			return models.Comment{}, false
		}
		logging.FromContext(ctx).Error("load comment", "error", err, "commentId", commentID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load comment")
		return models.Comment{}, false
	}

	if comment.OwnerID != CurrentUserID(ctx) {
		respondError(ctx, w, http.StatusForbidden, "only the author may modify this comment")
		return models.Comment{}, false
	}

	return comment, true
}

func (h CommentHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}
