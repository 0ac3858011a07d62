package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/views"
)

// VideoHandler implements video publishing and playback endpoints.
type VideoHandler struct {
	Videos  VideoStore
	Views   VideoViews
	History WatchHistoryStore
	Storage BlobStorage
	Prober  DurationProber
	Cleaner BlobCleaner
	NowFunc func() time.Time
}

type videoResponse struct {
	ID           string    `json:"id"`
	FileURL      string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	Published    bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newVideoResponse(video models.Video) videoResponse {
	return videoResponse{
		ID:           video.ID,
		FileURL:      video.FileURL,
		ThumbnailURL: video.ThumbnailURL,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		Views:        video.Views,
		Published:    video.Published,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
}

// Feed handles GET /api/v1/videos. Supported query parameters: page, limit,
// query, sortBy, sortType and userId. Only published videos are listed; an
// empty page is a success.
func (h VideoHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	params := views.FeedParams{
		Query:     strings.TrimSpace(q.Get("query")),
		OwnerID:   strings.TrimSpace(q.Get("userId")),
		SortBy:    strings.TrimSpace(q.Get("sortBy")),
		Ascending: strings.EqualFold(q.Get("sortType"), "asc"),
		Page:      pageParamsFrom(q.Get("page"), q.Get("limit")),
	}
	if params.OwnerID != "" && !validID(params.OwnerID) {
		respondError(ctx, w, http.StatusBadRequest, "invalid userId")
		return
	}

	feed, err := h.Views.VideoFeed(ctx, params)
	if err != nil {
		logging.FromContext(ctx).Error("load video feed", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load videos")
		return
	}

	respondData(ctx, w, http.StatusOK, feed, "videos")
}

// Publish handles POST /api/v1/videos. The payload is multipart with title
// and description fields plus videoFile and thumbnail uploads. Duration is
// measured from the uploaded file before it is pushed to blob storage.
func (h VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "multipart form data is required")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	if title == "" || description == "" {
		respondError(ctx, w, http.StatusBadRequest, "title and description are required")
		return
	}

	staged, err := stageUpload(r, "videoFile", "video")
	if err != nil {
		respondUploadError(w, r, "videoFile", err)
		return
	}
	defer staged.Remove()

	duration, err := h.Prober.Duration(ctx, staged.Path)
	if err != nil {
		logger.Error("probe video duration", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "could not read the uploaded video")
		return
	}

	fileURL, err := storeUpload(ctx, h.Storage, staged, "videos")
	if err != nil {
		logger.Error("store video file", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to store video")
		return
	}

	thumbnailURL, err := receiveUpload(ctx, h.Storage, r, "thumbnail", "image", "thumbnails")
	if err != nil {
		respondUploadError(w, r, "thumbnail", err)
		return
	}

	now := h.now()
	video := models.Video{
		ID:           uuid.NewString(),
		OwnerID:      userID,
		FileURL:      fileURL,
		ThumbnailURL: thumbnailURL,
		Title:        title,
		Description:  description,
		Duration:     duration,
		Published:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.Videos.Create(ctx, video); err != nil {
		logger.Error("create video", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "failed to publish video")
		return
	}

	respondData(ctx, w, http.StatusCreated, newVideoResponse(video), "video published")
}

// Get handles GET /api/v1/videos/{videoId}. Fetching a video counts a view
// and records it in the caller's watch history.
func (h VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	view, err := h.Views.VideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "video not found")
			return
		}
		logger.Error("load video", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load video")
		return
	}

	if err := h.Videos.IncrementViews(ctx, videoID); err != nil {
		logger.Warn("increment views", "error", err, "videoId", videoID)
	} else {
		view.Views++
	}

	if err := h.History.Record(ctx, userID, videoID); err != nil {
		logger.Warn("record watch history", "error", err, "videoId", videoID, "userId", userID)
	}

	respondData(ctx, w, http.StatusOK, view, "video")
}

// Update handles PATCH /api/v1/videos/{videoId}. Title and description may
// change, along with an optional replacement thumbnail.
func (h VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	video, ok := h.loadOwnedVideo(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "multipart form data is required")
		return
	}

	if title := strings.TrimSpace(r.FormValue("title")); title != "" {
		video.Title = title
	}
	if description := strings.TrimSpace(r.FormValue("description")); description != "" {
		video.Description = description
	}

	oldThumbnail := ""
	if _, _, formErr := r.FormFile("thumbnail"); formErr == nil {
		location, err := receiveUpload(ctx, h.Storage, r, "thumbnail", "image", "thumbnails")
		if err != nil {
			respondUploadError(w, r, "thumbnail", err)
			return
		}
		oldThumbnail = video.ThumbnailURL
		video.ThumbnailURL = location
	}

	video.UpdatedAt = h.now()
	if err := h.Videos.Update(ctx, video); err != nil {
		logger.Error("update video", "error", err, "videoId", video.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update video")
		return
	}

	if oldThumbnail != "" && h.Cleaner != nil {
		if err := h.Cleaner.Enqueue(ctx, oldThumbnail); err != nil {
			logger.Warn("schedule old thumbnail cleanup", "error", err, "location", oldThumbnail)
		}
	}

	respondData(ctx, w, http.StatusOK, newVideoResponse(video), "video updated")
}

// Delete handles DELETE /api/v1/videos/{videoId}. Blob deletion happens
// before the row is removed; a storage failure aborts the whole operation so
// the record never points at nothing.
func (h VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	video, ok := h.loadOwnedVideo(w, r)
	if !ok {
		return
	}

	for _, location := range []string{video.FileURL, video.ThumbnailURL} {
		if location == "" {
			continue
		}
		if err := h.Storage.Delete(ctx, location); err != nil {
			logger.Error("delete video blob", "error", err, "videoId", video.ID, "location", location)
			respondError(ctx, w, http.StatusInternalServerError, "unable to delete video files")
			return
		}
	}

	if err := h.Videos.Delete(ctx, video.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.Error("delete video", "error", err, "videoId", video.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to delete video")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "video deleted")
}

// TogglePublish handles PATCH /api/v1/videos/toggle/publish/{videoId}.
func (h VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	video, ok := h.loadOwnedVideo(w, r)
	if !ok {
		return
	}

	published := !video.Published
	if err := h.Videos.SetPublished(ctx, video.ID, published); err != nil {
		logging.FromContext(ctx).Error("toggle publish", "error", err, "videoId", video.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to toggle publish state")
		return
	}

	video.Published = published
	respondData(ctx, w, http.StatusOK, newVideoResponse(video), "publish state toggled")
}

// loadOwnedVideo fetches the path video and enforces that the caller owns it.
// On failure it writes the response and reports false.
func (h VideoHandler) loadOwnedVideo(w http.ResponseWriter, r *http.Request) (models.Video, bool) {
	ctx := r.Context()
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return models.Video{}, false
	}

	video, err := h.Videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "video not found")
			return models.Video{}, false
		}
		logging.FromContext(ctx).Error("load video", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load video")
		return models.Video{}, false
	}

	if video.OwnerID != CurrentUserID(ctx) {
		respondError(ctx, w, http.StatusForbidden, "only the owner may modify this video")
		return models.Video{}, false
	}

	return video, true
}

func (h VideoHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}

// pageParamsFrom parses page and limit query values, leaving zero values for
// Normalize to coerce.
func pageParamsFrom(page, limit string) views.PageParams {
	var params views.PageParams
	if n, err := strconv.Atoi(page); err == nil {
		params.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		params.Limit = n
	}
	return params
}
