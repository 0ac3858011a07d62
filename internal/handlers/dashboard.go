package handlers

import (
	"net/http"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
)

// DashboardHandler serves the creator dashboard for the authenticated user's
// own channel.
type DashboardHandler struct {
	Views DashboardViews
}

// Stats handles GET /api/v1/dashboard/stats.
func (h DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	stats, err := h.Views.ChannelStats(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load channel stats", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load channel stats")
		return
	}

	respondData(ctx, w, http.StatusOK, stats, "channel stats")
}

// Videos handles GET /api/v1/dashboard/videos. Drafts are included since the
// caller owns the channel.
func (h DashboardHandler) Videos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	videos, err := h.Views.ChannelVideos(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load channel videos", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load channel videos")
		return
	}

	respondData(ctx, w, http.StatusOK, videos, "channel videos")
}
