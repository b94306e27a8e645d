package http

import (
	"net/http"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Toggle a subscription
// @Description  Subscribe to or unsubscribe from a channel. Subscribing to your own channel is rejected.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subscriptions/{channel_id} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	channelID := c.Param("channel_id")

	state, err := h.subscriptionUseCase.Toggle(c.Request.Context(), userID, channelID)
	if err != nil {
		h.logger.Error("Failed to toggle subscription: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":      state,
		"subscribed": state == entity.ToggleAdded,
	})
}

// GetSubscribers godoc
// @Summary      List channel subscribers
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /channels/{channel_id}/subscribers [get]
func (h *SubscriptionHandler) GetSubscribers(c *gin.Context) {
	channelID := c.Param("channel_id")

	subscribers, err := h.subscriptionUseCase.GetSubscribers(c.Request.Context(), channelID)
	if err != nil {
		h.logger.Error("Failed to list subscribers: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers, "count": len(subscribers)})
}

// GetSubscribedChannels godoc
// @Summary      List subscribed channels
// @Description  Channels the authenticated user subscribes to.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	userID := c.GetString("user_id")

	channels, err := h.subscriptionUseCase.GetSubscribedChannels(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list subscribed channels: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channels": channels, "count": len(channels)})
}
