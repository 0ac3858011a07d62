package repositories

import (
	"context"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
)

// LikeRepository toggles and counts like rows.
type LikeRepository interface {
	// Toggle inserts a like for (user, target) when absent and removes it
	// when present. The returned flag reports the resulting state.
	Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error)
	Count(ctx context.Context, target models.LikeTarget) (int64, error)
}
