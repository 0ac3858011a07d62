package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// ChannelProfile loads the public channel page for the given handle,
// annotated with follower counts and whether viewerID subscribes to it.
// An empty viewerID marks the profile as not subscribed.
func (a *Aggregator) ChannelProfile(ctx context.Context, handle, viewerID string) (ChannelProfile, error) {
	ctx, span := logging.StartSpan(ctx, "views.ChannelProfile")
	defer span.End()

	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return ChannelProfile{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT u.id, u.handle, u.display_name, u.email, u.avatar_url, u.cover_url,
               (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id),
               (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
               EXISTS (
                   SELECT 1 FROM subscriptions s
                   WHERE s.channel_id = u.id AND s.subscriber_id = $2
               )
        FROM users u
        WHERE u.handle = $1`, handle, viewerID)

	var profile ChannelProfile
	err = row.Scan(
		&profile.ID, &profile.Handle, &profile.DisplayName, &profile.Email,
		&profile.AvatarURL, &profile.CoverURL,
		&profile.SubscriberCount, &profile.SubscribedCount, &profile.ViewerSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ChannelProfile{}, repositories.ErrNotFound
		}
		return ChannelProfile{}, fmt.Errorf("select channel profile: %w", err)
	}

	return profile, nil
}

// Subscribers lists the users subscribed to the channel.
func (a *Aggregator) Subscribers(ctx context.Context, channelID string) ([]ChannelMember, error) {
	return a.queryChannelMembers(ctx, `
        SELECT u.id, u.handle, u.display_name, u.avatar_url
        FROM subscriptions s
        JOIN users u ON u.id = s.subscriber_id
        WHERE s.channel_id = $1
        ORDER BY s.created_at DESC`, channelID)
}

// SubscribedChannels lists the channels the user subscribes to.
func (a *Aggregator) SubscribedChannels(ctx context.Context, subscriberID string) ([]ChannelMember, error) {
	return a.queryChannelMembers(ctx, `
        SELECT u.id, u.handle, u.display_name, u.avatar_url
        FROM subscriptions s
        JOIN users u ON u.id = s.channel_id
        WHERE s.subscriber_id = $1
        ORDER BY s.created_at DESC`, subscriberID)
}

func (a *Aggregator) queryChannelMembers(ctx context.Context, query string, args ...any) ([]ChannelMember, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select channel members: %w", err)
	}
	defer rows.Close()

	members := []ChannelMember{}
	for rows.Next() {
		var member ChannelMember
		if err := rows.Scan(&member.ID, &member.Handle, &member.DisplayName, &member.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan channel member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channel members: %w", err)
	}

	return members, nil
}
