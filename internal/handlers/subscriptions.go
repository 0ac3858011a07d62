package handlers

import (
	"errors"
	"net/http"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// SubscriptionHandler implements channel subscription endpoints.
type SubscriptionHandler struct {
	Subscriptions SubscriptionStore
	Views         SubscriptionViews
	Users         UserStore
}

type toggleSubscriptionResponse struct {
	ChannelID  string `json:"channelId"`
	Subscribed bool   `json:"subscribed"`
}

// Toggle handles POST /api/v1/subscriptions/{channelId}. Subscribing to
// your own channel is rejected.
func (h SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	subscriberID := CurrentUserID(ctx)
	channelID, ok := pathID(w, r, "channelId")
	if !ok {
		return
	}

	if channelID == subscriberID {
		respondError(ctx, w, http.StatusBadRequest, "cannot subscribe to your own channel")
		return
	}

	if _, err := h.Users.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "channel not found")
			return
		}
		logger.Error("load channel", "error", err, "channelId", channelID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to toggle subscription")
		return
	}

	subscribed, err := h.Subscriptions.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		logger.Error("toggle subscription", "error", err, "channelId", channelID, "subscriberId", subscriberID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to toggle subscription")
		return
	}

	respondData(ctx, w, http.StatusOK, toggleSubscriptionResponse{
		ChannelID:  channelID,
		Subscribed: subscribed,
	}, "subscription toggled")
}

// Subscribers handles GET /api/v1/subscriptions/channel/{channelId} and lists
// the users subscribed to that channel.
func (h SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	channelID, ok := pathID(w, r, "channelId")
	if !ok {
		return
	}

	members, err := h.Views.Subscribers(ctx, channelID)
	if err != nil {
		logging.FromContext(ctx).Error("load subscribers", "error", err, "channelId", channelID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load subscribers")
		return
	}

	respondData(ctx, w, http.StatusOK, members, "subscribers")
}

// SubscribedChannels handles GET /api/v1/subscriptions/user/{subscriberId}
// and lists the channels that user subscribes to.
func (h SubscriptionHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subscriberID, ok := pathID(w, r, "subscriberId")
	if !ok {
		return
	}

	channels, err := h.Views.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		logging.FromContext(ctx).Error("load subscribed channels", "error", err, "subscriberId", subscriberID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load subscribed channels")
		return
	}

	respondData(ctx, w, http.StatusOK, channels, "subscribed channels")
}
