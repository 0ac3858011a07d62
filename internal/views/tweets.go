package views

import (
	"context"
	"fmt"
)

// TweetsForUser lists one page of the user's tweets with the author profile
// attached, newest first.
func (a *Aggregator) TweetsForUser(ctx context.Context, userID string, page PageParams) ([]TweetView, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	page = page.Normalize()
	rows, err := conn.Query(ctx, `
        SELECT t.id, t.content, t.created_at,
               u.id, u.handle, u.display_name, u.avatar_url
        FROM tweets t
        JOIN users u ON u.id = t.owner_id
        WHERE t.owner_id = $1
        ORDER BY t.created_at DESC
        LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("select tweet views: %w", err)
	}
	defer rows.Close()

	tweets := []TweetView{}
	for rows.Next() {
		var view TweetView
		err := rows.Scan(
			&view.ID, &view.Content, &view.CreatedAt,
			&view.Owner.ID, &view.Owner.Handle, &view.Owner.DisplayName, &view.Owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tweet view: %w", err)
		}
		view.CreatedAt = view.CreatedAt.UTC()
		tweets = append(tweets, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tweet views: %w", err)
	}

	return tweets, nil
}
