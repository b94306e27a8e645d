package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestToggleSubscription_Subscribe(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", asUser("user-123", handler.ToggleSubscription))

	mockUseCase.On("Toggle", "user-123", "channel-456").Return(entity.ToggleAdded, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channel-456", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "added", response["state"])
	assert.Equal(t, true, response["subscribed"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleSubscription_SelfEdge(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", asUser("user-123", handler.ToggleSubscription))

	mockUseCase.On("Toggle", "user-123", "user-123").
		Return(entity.ToggleState(""), fmt.Errorf("%w: cannot subscribe to your own channel", entity.ErrInvalidEdge))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/user-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleSubscription_ChannelNotFound(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions/:channel_id", asUser("user-123", handler.ToggleSubscription))

	mockUseCase.On("Toggle", "user-123", "ghost").
		Return(entity.ToggleState(""), fmt.Errorf("channel ghost: %w", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetSubscribers_Success(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/channels/:channel_id/subscribers", handler.GetSubscribers)

	subscribers := []entity.UserSummary{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}
	mockUseCase.On("GetSubscribers", "channel-456").Return(subscribers, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels/channel-456/subscribers", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}

func TestGetSubscribedChannels_Success(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/subscriptions", asUser("user-123", handler.GetSubscribedChannels))

	mockUseCase.On("GetSubscribedChannels", "user-123").Return([]entity.UserSummary{{ID: "c1"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
