package http

import (
	"context"
	"mime/multipart"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser simulates the auth middleware having stored the caller's id.
func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Toggle(ctx context.Context, userID string, target entity.LikeTarget) (entity.ToggleState, error) {
	args := m.Called(userID, target)
	return args.Get(0).(entity.ToggleState), args.Error(1)
}

func (m *MockLikeUseCase) GetLikedVideos(ctx context.Context, userID string, page, pageSize int) (usecase.Page[entity.VideoSummary], error) {
	args := m.Called(userID, page, pageSize)
	return args.Get(0).(usecase.Page[entity.VideoSummary]), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

// MockSubscriptionUseCase is a mock implementation of SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error) {
	args := m.Called(subscriberID, channelID)
	return args.Get(0).(entity.ToggleState), args.Error(1)
}

func (m *MockSubscriptionUseCase) GetSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserSummary), args.Error(1)
}

func (m *MockSubscriptionUseCase) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserSummary), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) Upload(ctx context.Context, ownerID, title, description string, duration float64, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(ownerID, title, description, duration, videoFile, thumbnailFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(ctx context.Context, videoID, viewerID string) (*entity.VideoView, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoView), args.Error(1)
}

func (m *MockVideoUseCase) Update(ctx context.Context, videoID, actorID string, title, description *string, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(videoID, actorID, title, description, thumbnailFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(ctx context.Context, videoID, actorID string) error {
	args := m.Called(videoID, actorID)
	return args.Error(0)
}

func (m *MockVideoUseCase) ListVideos(ctx context.Context, page, pageSize int) (usecase.Page[entity.VideoSummary], error) {
	args := m.Called(page, pageSize)
	return args.Get(0).(usecase.Page[entity.VideoSummary]), args.Error(1)
}

func (m *MockVideoUseCase) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) (usecase.Page[entity.VideoSummary], error) {
	args := m.Called(ownerID, page, pageSize)
	return args.Get(0).(usecase.Page[entity.VideoSummary]), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Add(ctx context.Context, videoID, authorID, content string) (*entity.Comment, error) {
	args := m.Called(videoID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(ctx context.Context, commentID, actorID string) error {
	args := m.Called(commentID, actorID)
	return args.Error(0)
}

func (m *MockCommentUseCase) ListVideoComments(ctx context.Context, videoID, viewerID string, page, pageSize int) (usecase.Page[entity.CommentView], error) {
	args := m.Called(videoID, viewerID, page, pageSize)
	return args.Get(0).(usecase.Page[entity.CommentView]), args.Error(1)
}

func (m *MockCommentUseCase) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)
