package http

import (
	"net/http"
	"strconv"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type uploadVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
}

// UploadVideo godoc
// @Summary      Upload a video
// @Description  Upload a video file with an optional thumbnail.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        duration formData number false "Duration in seconds"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	var req uploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}
	thumbnailFile, _ := c.FormFile("thumbnail")

	duration, _ := strconv.ParseFloat(req.Duration, 64)

	video, err := h.videoUseCase.Upload(c.Request.Context(), userID, req.Title, req.Description, duration, videoFile, thumbnailFile)
	if err != nil {
		h.logger.Error("Failed to upload video: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get video by ID
// @Description  Composed video view with like count, subscriber count and viewer-relative flags. Anonymous viewers get false flags.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.VideoView
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID := c.Param("id")
	viewerID := c.GetString("user_id")

	view, err := h.videoUseCase.GetVideo(c.Request.Context(), videoID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListVideos godoc
// @Summary      List videos
// @Description  Paginated newest-first video summaries.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        page_size query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.videoUseCase.ListVideos(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetChannelVideos godoc
// @Summary      List a channel's videos
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Param        page query int false "Page number (default 1)"
// @Param        page_size query int false "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /channels/{channel_id}/videos [get]
func (h *VideoHandler) GetChannelVideos(c *gin.Context) {
	channelID := c.Param("channel_id")
	page, pageSize := pageParams(c)

	result, err := h.videoUseCase.ListByOwner(c.Request.Context(), channelID, page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list channel videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Update title, description or thumbnail. Owner only.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  entity.Video
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	var title, description *string
	if v, ok := c.GetPostForm("title"); ok {
		title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		description = &v
	}
	thumbnailFile, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.Update(c.Request.Context(), videoID, userID, title, description, thumbnailFile)
	if err != nil {
		h.logger.Error("Failed to update video: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Delete a video and its comments, likes and playlist memberships. Owner only.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.videoUseCase.Delete(c.Request.Context(), videoID, userID); err != nil {
		h.logger.Error("Failed to delete video: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
