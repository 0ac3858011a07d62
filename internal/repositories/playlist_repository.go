package repositories

import (
	"context"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
)

// PlaylistRepository defines data access for playlists and their video lists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist models.Playlist) error
	FindByID(ctx context.Context, id string) (models.Playlist, error)
	// Update renames the playlist; ErrConflict when the new name is taken.
	Update(ctx context.Context, playlist models.Playlist) error
	Delete(ctx context.Context, id string) error
	// AddVideo appends a video reference; ErrConflict when already present.
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}
