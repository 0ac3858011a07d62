package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// PlaylistByID loads a playlist with its owner profile and member videos.
// Videos keep the order they were added in.
func (a *Aggregator) PlaylistByID(ctx context.Context, playlistID string) (PlaylistView, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return PlaylistView{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT p.id, p.name, p.description, p.created_at, p.updated_at,
               u.id, u.handle, u.display_name, u.avatar_url
        FROM playlists p
        JOIN users u ON u.id = p.owner_id
        WHERE p.id = $1`, playlistID)

	var view PlaylistView
	var owner Profile
	err = row.Scan(
		&view.ID, &view.Name, &view.Description, &view.CreatedAt, &view.UpdatedAt,
		&owner.ID, &owner.Handle, &owner.DisplayName, &owner.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PlaylistView{}, repositories.ErrNotFound
		}
		return PlaylistView{}, fmt.Errorf("select playlist view: %w", err)
	}
	view.CreatedAt = view.CreatedAt.UTC()
	view.UpdatedAt = view.UpdatedAt.UTC()
	view.Owner = &owner

	view.Videos, err = a.queryVideoViews(ctx, `
        SELECT `+videoViewColumns+`
        FROM playlist_videos pv
        JOIN videos v ON v.id = pv.video_id
        JOIN users u ON u.id = v.owner_id
        WHERE pv.playlist_id = $1
        ORDER BY pv.added_at`, playlistID)
	if err != nil {
		return PlaylistView{}, err
	}

	return view, nil
}

// PlaylistsForUser lists the user's playlists with member videos, newest
// playlist first. Owner profiles are omitted since every list belongs to the
// same user.
func (a *Aggregator) PlaylistsForUser(ctx context.Context, ownerID string) ([]PlaylistView, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	rows, err := conn.Query(ctx, `
        SELECT p.id, p.name, p.description, p.created_at, p.updated_at
        FROM playlists p
        WHERE p.owner_id = $1
        ORDER BY p.created_at DESC`, ownerID)
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("select playlists: %w", err)
	}

	playlists := []PlaylistView{}
	for rows.Next() {
		var view PlaylistView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.CreatedAt, &view.UpdatedAt); err != nil {
			rows.Close()
			conn.Release()
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		view.CreatedAt = view.CreatedAt.UTC()
		view.UpdatedAt = view.UpdatedAt.UTC()
		playlists = append(playlists, view)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		conn.Release()
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	rows.Close()
	conn.Release()

	for i := range playlists {
		videos, err := a.queryVideoViews(ctx, `
            SELECT `+videoViewColumns+`
            FROM playlist_videos pv
            JOIN videos v ON v.id = pv.video_id
            JOIN users u ON u.id = v.owner_id
            WHERE pv.playlist_id = $1
            ORDER BY pv.added_at`, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Videos = videos
	}

	return playlists, nil
}
