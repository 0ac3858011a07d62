package repositories

import "context"

// SubscriptionRepository toggles subscription rows between users.
type SubscriptionRepository interface {
	// Toggle subscribes when no row exists for (subscriber, channel) and
	// unsubscribes otherwise, reporting the resulting state.
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
}
