package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"full_name" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with optional avatar and cover images.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        email formData string true "Email"
// @Param        full_name formData string true "Full name"
// @Param        password formData string true "Password (min 8 chars)"
// @Param        avatar formData file false "Avatar image"
// @Param        cover formData file false "Cover image"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avatar, _ := c.FormFile("avatar")
	cover, _ := c.FormFile("cover")

	user, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  req.Password,
		Avatar:    avatar,
		CoverFile: cover,
	})
	if err != nil {
		h.logger.Error("Failed to register user: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetChannelProfile godoc
// @Summary      Get channel profile
// @Description  Public channel page with derived subscriber counts. The is_subscribed flag is omitted when viewing your own channel and false for anonymous viewers.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  entity.ChannelProfile
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id} [get]
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	channelID := c.Param("channel_id")
	viewerID := c.GetString("user_id")

	profile, err := h.userUseCase.GetChannelProfile(c.Request.Context(), channelID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetWatchHistory godoc
// @Summary      Get watch history
// @Description  The authenticated user's watched videos, oldest first, duplicates included.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /users/history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	history, err := h.userUseCase.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get watch history: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history, "count": len(history)})
}

type confirmPremiumRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
}

// ConfirmPremium godoc
// @Summary      Confirm premium purchase
// @Description  Flip the premium flag once the payment provider reports the payment as captured.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body confirmPremiumRequest true "Payment reference"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /users/premium/confirm [post]
func (h *UserHandler) ConfirmPremium(c *gin.Context) {
	userID := c.GetString("user_id")

	var req confirmPremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.ConfirmPremium(c.Request.Context(), userID, req.PaymentID, req.OrderID); err != nil {
		h.logger.Error("Failed to confirm premium: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium activated"})
}
