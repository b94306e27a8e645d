package http

import (
	"net/http"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type createPlaylistRequest struct {
	Name    string `json:"name" binding:"required"`
	VideoID string `json:"video_id" binding:"required"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Description  Create a playlist seeded with its first video.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPlaylistRequest true "Playlist name and first video"
// @Success      201  {object}  entity.Playlist
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), userID, req.Name, req.VideoID)
	if err != nil {
		h.logger.Error("Failed to create playlist: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, playlist)
}

// GetPlaylist godoc
// @Summary      Get playlist by ID
// @Description  Playlist with its videos in playlist order and the owner summary.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  entity.PlaylistView
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	view, err := h.playlistUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetChannelPlaylists godoc
// @Summary      List a channel's playlists
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /channels/{channel_id}/playlists [get]
func (h *PlaylistHandler) GetChannelPlaylists(c *gin.Context) {
	playlists, err := h.playlistUseCase.ListByOwner(c.Request.Context(), c.Param("channel_id"))
	if err != nil {
		h.logger.Error("Failed to list playlists: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists, "count": len(playlists)})
}

type renamePlaylistRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenamePlaylist godoc
// @Summary      Rename a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body renamePlaylistRequest true "New name"
// @Success      200  {object}  entity.Playlist
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) RenamePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req renamePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Rename(c.Request.Context(), c.Param("id"), userID, req.Name)
	if err != nil {
		h.logger.Error("Failed to rename playlist: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.logger.Error("Failed to delete playlist: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted successfully"})
}

// ToggleVideo godoc
// @Summary      Toggle a video in a playlist
// @Description  Add the video if absent, remove it if present. Playlist owner only.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/videos/{video_id} [post]
func (h *PlaylistHandler) ToggleVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	state, err := h.playlistUseCase.ToggleVideo(c.Request.Context(), c.Param("id"), c.Param("video_id"), userID)
	if err != nil {
		h.logger.Error("Failed to toggle playlist video: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    state,
		"included": state == entity.ToggleAdded,
	})
}
