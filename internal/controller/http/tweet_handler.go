package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Description  Publish a short text post on the authenticated user's own channel.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body tweetRequest true "Tweet content"
// @Success      201  {object}  entity.Tweet
// @Failure      400  {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.Create(c.Request.Context(), userID, userID, req.Content)
	if err != nil {
		h.logger.Error("Failed to create tweet: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tweet)
}

// UpdateTweet godoc
// @Summary      Edit a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body tweetRequest true "New content"
// @Success      200  {object}  entity.Tweet
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	tweetID := c.Param("id")
	userID := c.GetString("user_id")

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Request.Context(), tweetID, userID, req.Content)
	if err != nil {
		h.logger.Error("Failed to update tweet: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tweet)
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.tweetUseCase.Delete(c.Request.Context(), tweetID, userID); err != nil {
		h.logger.Error("Failed to delete tweet: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted successfully"})
}

// GetChannelTweets godoc
// @Summary      List a channel's tweets
// @Description  Tweets with like counts and the viewer-relative liked flag.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/tweets [get]
func (h *TweetHandler) GetChannelTweets(c *gin.Context) {
	channelID := c.Param("channel_id")
	viewerID := c.GetString("user_id")

	tweets, err := h.tweetUseCase.ListChannelTweets(c.Request.Context(), channelID, viewerID)
	if err != nil {
		h.logger.Error("Failed to list channel tweets: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tweets": tweets, "count": len(tweets)})
}
