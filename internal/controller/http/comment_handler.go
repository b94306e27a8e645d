package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body addCommentRequest true "Comment content"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.Add(c.Request.Context(), videoID, userID, req.Content)
	if err != nil {
		h.logger.Error("Failed to add comment: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Remove a comment. Allowed for the comment's author and for the owner of the video it sits under.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.commentUseCase.Delete(c.Request.Context(), commentID, userID); err != nil {
		h.logger.Error("Failed to delete comment: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// GetVideoComments godoc
// @Summary      List video comments
// @Description  Paginated newest-first comments with like counts and author summaries.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        page query int false "Page number (default 1)"
// @Param        page_size query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /videos/{id}/comments [get]
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	videoID := c.Param("id")
	viewerID := c.GetString("user_id")
	page, pageSize := pageParams(c)

	result, err := h.commentUseCase.ListVideoComments(c.Request.Context(), videoID, viewerID, page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list comments: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
