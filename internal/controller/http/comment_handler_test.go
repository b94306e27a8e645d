package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestAddComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/comments", asUser("author", handler.AddComment))

	comment := &entity.Comment{ID: "c1", VideoID: "video-1", AuthorID: "author", Content: "nice video"}
	mockUseCase.On("Add", "video-1", "author", "nice video").Return(comment, nil)

	body := bytes.NewBufferString(`{"content":"nice video"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/comments", body)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_MissingContent(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/videos/:id/comments", asUser("author", handler.AddComment))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/video-1/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Add")
}

func TestDeleteComment_ThirdPartyForbidden(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:id", asUser("stranger", handler.DeleteComment))

	mockUseCase.On("Delete", "c1", "stranger").
		Return(fmt.Errorf("%w: only the comment author or the video owner can delete this comment", entity.ErrUnauthorized))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_VideoOwnerAllowed(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:id", asUser("video-owner", handler.DeleteComment))

	mockUseCase.On("Delete", "c1", "video-owner").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetVideoComments_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id/comments", handler.GetVideoComments)

	views := []entity.CommentView{
		{
			Comment:    entity.Comment{ID: "c1", VideoID: "video-1", AuthorID: "author", Content: "first"},
			Author:     entity.UserSummary{ID: "author", Username: "commenter"},
			LikesCount: 2,
		},
	}
	page := usecase.NewPage(views, 1, 10, 1)
	mockUseCase.On("ListVideoComments", "video-1", "", 0, 0).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/video-1/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["total_items"])

	mockUseCase.AssertExpectations(t)
}
