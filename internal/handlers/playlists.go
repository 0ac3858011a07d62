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

// PlaylistHandler implements playlist management endpoints.
type PlaylistHandler struct {
	Playlists PlaylistStore
	Videos    VideoStore
	Views     PlaylistViews
	NowFunc   func() time.Time
}

type playlistResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videoIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPlaylistResponse(playlist models.Playlist) playlistResponse {
	videoIDs := playlist.VideoIDs
	if videoIDs == nil {
		videoIDs = []string{}
	}
	return playlistResponse{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

// Create handles POST /api/v1/playlist. Playlist names are unique per owner.
func (h PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		respondError(ctx, w, http.StatusBadRequest, "name and description are required")
		return
	}

	now := h.now()
	playlist := models.Playlist{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Playlists.Create(ctx, playlist); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respondError(ctx, w, http.StatusConflict, "a playlist with that name already exists")
			return
		}
		logger.Error("create playlist", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to create playlist")
		return
	}

	respondData(ctx, w, http.StatusCreated, newPlaylistResponse(playlist), "playlist created")
}

// ListForUser handles GET /api/v1/playlist/user/{userId}.
func (h PlaylistHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	playlists, err := h.Views.PlaylistsForUser(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load playlists", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load playlists")
		return
	}

	respondData(ctx, w, http.StatusOK, playlists, "playlists")
}

// Get handles GET /api/v1/playlist/{playlistId}.
func (h PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}

	view, err := h.Views.PlaylistByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "playlist not found")
			return
		}
		logging.FromContext(ctx).Error("load playlist", "error", err, "playlistId", playlistID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load playlist")
		return
	}

	respondData(ctx, w, http.StatusOK, view, "playlist")
}

// Update handles PATCH /api/v1/playlist/{playlistId}.
func (h PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	playlist, ok := h.loadOwnedPlaylist(w, r)
	if !ok {
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		playlist.Name = name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		playlist.Description = description
	}
	playlist.UpdatedAt = h.now()

	if err := h.Playlists.Update(ctx, playlist); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respondError(ctx, w, http.StatusConflict, "a playlist with that name already exists")
			return
		}
		logger.Error("update playlist", "error", err, "playlistId", playlist.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update playlist")
		return
	}

	respondData(ctx, w, http.StatusOK, newPlaylistResponse(playlist), "playlist updated")
}

// Delete handles DELETE /api/v1/playlist/{playlistId}.
func (h PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlist, ok := h.loadOwnedPlaylist(w, r)
	if !ok {
		return
	}

	if err := h.Playlists.Delete(ctx, playlist.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logging.FromContext(ctx).Error("delete playlist", "error", err, "playlistId", playlist.ID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to delete playlist")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "playlist deleted")
}

// AddVideo handles PATCH /api/v1/playlist/add/{videoId}/{playlistId}. Adding
// a video that is already present fails rather than duplicating it.
func (h PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	playlist, ok := h.loadOwnedPlaylist(w, r)
	if !ok {
		return
	}

	if _, err := h.Videos.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "video not found")
			return
		}
		logger.Error("load video", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to add video to playlist")
		return
	}

	if err := h.Playlists.AddVideo(ctx, playlist.ID, videoID); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respondError(ctx, w, http.StatusBadRequest, "video already exists in the playlist")
			return
		}
		logger.Error("add playlist video", "error", err, "playlistId", playlist.ID, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to add video to playlist")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "video added to playlist")
}

// RemoveVideo handles PATCH /api/v1/playlist/remove/{videoId}/{playlistId}.
// Removing an absent video is a no-op success.
func (h PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videoID, ok := pathID(w, r, "videoId")
	if !ok {
		return
	}

	playlist, ok := h.loadOwnedPlaylist(w, r)
	if !ok {
		return
	}

	if err := h.Playlists.RemoveVideo(ctx, playlist.ID, videoID); err != nil {
		logging.FromContext(ctx).Error("remove playlist video", "error", err, "playlistId", playlist.ID, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to remove video from playlist")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "video removed from playlist")
}

func (h PlaylistHandler) loadOwnedPlaylist(w http.ResponseWriter, r *http.Request) (models.Playlist, bool) {
	ctx := r.Context()
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return models.Playlist{}, false
	}

	playlist, err := h.Playlists.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "playlist not found")
			return models.Playlist{}, false
		}
		logging.FromContext(ctx).Error("load playlist", "error", err, "playlistId", playlistID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load playlist")
		return models.Playlist{}, false
	}

	if playlist.OwnerID != CurrentUserID(ctx) {
		respondError(ctx, w, http.StatusForbidden, "only the owner may modify this playlist")
		return models.Playlist{}, false
	}

	return playlist, true
}

func (h PlaylistHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}
