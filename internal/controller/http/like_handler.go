package http

import (
	"net/http"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Like or unlike a video, comment or tweet. The same call flips the edge; the response reports the resulting state.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Target kind" Enums(video, comment, tweet)
// @Param        id path string true "Target ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /likes/{kind}/{id} [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")

	target, err := entity.NewLikeTarget(entity.TargetKind(c.Param("kind")), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.likeUseCase.Toggle(c.Request.Context(), userID, target)
	if err != nil {
		h.logger.Error("Failed to toggle like: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": state,
		"liked": state == entity.ToggleAdded,
	})
}

// GetLikedVideos godoc
// @Summary      List liked videos
// @Description  Get the authenticated user's liked videos, most recently liked first.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        page_size query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")
	page, pageSize := pageParams(c)

	result, err := h.likeUseCase.GetLikedVideos(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.logger.Error("Failed to get liked videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
