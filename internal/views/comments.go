package views

import (
	"context"
	"fmt"
)

// CommentsForVideo lists the comments on a video with their authors attached,
// newest first, paginated.
func (a *Aggregator) CommentsForVideo(ctx context.Context, videoID string, page PageParams) ([]CommentView, error) {
	page = page.Normalize()

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT c.id, c.video_id, c.content, c.created_at,
               u.id, u.handle, u.display_name, u.avatar_url
        FROM comments c
        JOIN users u ON u.id = c.owner_id
        WHERE c.video_id = $1
        ORDER BY c.created_at DESC
        LIMIT $2 OFFSET $3`, videoID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("select comment views: %w", err)
	}
	defer rows.Close()

	comments := []CommentView{}
	for rows.Next() {
		var view CommentView
		err := rows.Scan(
			&view.ID, &view.VideoID, &view.Content, &view.CreatedAt,
			&view.Owner.ID, &view.Owner.Handle, &view.Owner.DisplayName, &view.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment view: %w", err)
		}
		view.CreatedAt = view.CreatedAt.UTC()
		comments = append(comments, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment views: %w", err)
	}

	return comments, nil
}
