package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
)

type VideoUseCase interface {
	Upload(ctx context.Context, ownerID, title, description string, duration float64, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	GetVideo(ctx context.Context, videoID, viewerID string) (*entity.VideoView, error)
	Update(ctx context.Context, videoID, actorID string, title, description *string, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	Delete(ctx context.Context, videoID, actorID string) error
	ListVideos(ctx context.Context, page, pageSize int) (Page[entity.VideoSummary], error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) (Page[entity.VideoSummary], error)
}

type videoUseCase struct {
	videoRepo        persistent.VideoRepository
	userRepo         persistent.UserRepository
	likeRepo         persistent.LikeRepository
	subscriptionRepo persistent.SubscriptionRepository
	playlistRepo     persistent.PlaylistRepository
	history          WatchHistoryStore
	s3Client         *s3.Client
	logger           *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	likeRepo persistent.LikeRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	playlistRepo persistent.PlaylistRepository,
	history WatchHistoryStore,
	s3Client *s3.Client,
	log *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:        videoRepo,
		userRepo:         userRepo,
		likeRepo:         likeRepo,
		subscriptionRepo: subscriptionRepo,
		playlistRepo:     playlistRepo,
		history:          history,
		s3Client:         s3Client,
		logger:           log,
	}
}

func (uc *videoUseCase) Upload(ctx context.Context, ownerID, title, description string, duration float64, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if videoFile == nil {
		return nil, fmt.Errorf("%w: video file is required", entity.ErrValidation)
	}
	if thumbnailFile == nil {
		return nil, fmt.Errorf("%w: thumbnail file is required", entity.ErrValidation)
	}

	videoURL, err := uc.uploadMedia(ownerID, videoFile, "video/mp4")
	if err != nil {
		return nil, err
	}
	thumbnailURL, err := uc.uploadMedia(ownerID, thumbnailFile, "image/jpeg")
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(title),
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		IsPublished:  true,
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

// GetVideo composes the viewer-relative read-model for a video. Counts
// and flags are derived from edge rows at read time; the view increment
// and watch-history append are best-effort side effects that never fail
// the fetch.
func (uc *videoUseCase) GetVideo(ctx context.Context, videoID, viewerID string) (*entity.VideoView, error) {
	if videoID == "" {
		return nil, fmt.Errorf("%w: video id is required", entity.ErrValidation)
	}

	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	owner, err := uc.userRepo.GetByID(ctx, video.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("video owner %s: %w", video.OwnerID, err)
	}

	target := entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID}
	likesCount, err := uc.likeRepo.CountForTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	subscribersCount, err := uc.subscriptionRepo.CountForChannel(ctx, video.OwnerID)
	if err != nil {
		return nil, err
	}

	// Anonymous viewers always get false flags, never null.
	isLiked := false
	isSubscribed := false
	if viewerID != "" {
		if isLiked, err = uc.likeRepo.Exists(ctx, viewerID, target); err != nil {
			return nil, err
		}
		if isSubscribed, err = uc.subscriptionRepo.Exists(ctx, viewerID, video.OwnerID); err != nil {
			return nil, err
		}
	}

	view := &entity.VideoView{
		Video:            *video,
		Owner:            owner.Summary(),
		LikesCount:       likesCount,
		SubscribersCount: subscribersCount,
		IsLiked:          isLiked,
		IsSubscribed:     isSubscribed,
	}

	uc.recordFetch(ctx, videoID, viewerID)

	return view, nil
}

// recordFetch applies the two fetch side effects. Failures are logged and
// dropped rather than retried; the counters are advisory and the history
// is reconstructible from elsewhere.
func (uc *videoUseCase) recordFetch(ctx context.Context, videoID, viewerID string) {
	if err := uc.videoRepo.IncrementViews(ctx, videoID); err != nil {
		uc.logger.Warn("Failed to increment views for video %s: %v", videoID, err)
	}
	if viewerID != "" && uc.history != nil {
		if err := uc.history.Append(ctx, viewerID, videoID); err != nil {
			uc.logger.Warn("Failed to append watch history for user %s: %v", viewerID, err)
		}
	}
}

func (uc *videoUseCase) Update(ctx context.Context, videoID, actorID string, title, description *string, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	if !canMutate(actorID, video.OwnerID) {
		return nil, fmt.Errorf("%w: only the owner can edit this video", entity.ErrUnauthorized)
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, fmt.Errorf("%w: title cannot be blank", entity.ErrValidation)
		}
		video.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		video.Description = *description
	}
	if thumbnailFile != nil {
		thumbnailURL, err := uc.uploadMedia(actorID, thumbnailFile, "image/jpeg")
		if err != nil {
			return nil, err
		}
		video.ThumbnailURL = thumbnailURL
	}

	if err := uc.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Delete removes the video along with its comments, its like edges and
// every playlist membership pointing at it.
func (uc *videoUseCase) Delete(ctx context.Context, videoID, actorID string) error {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("video %s: %w", videoID, err)
	}
	if !canMutate(actorID, video.OwnerID) {
		return fmt.Errorf("%w: only the owner can delete this video", entity.ErrUnauthorized)
	}

	if err := uc.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}
	if err := uc.playlistRepo.RemoveVideoEverywhere(ctx, videoID); err != nil {
		return err
	}
	return uc.likeRepo.DeleteForTarget(ctx, entity.LikeTarget{Kind: entity.TargetVideo, ID: videoID})
}

func (uc *videoUseCase) ListVideos(ctx context.Context, page, pageSize int) (Page[entity.VideoSummary], error) {
	p, size, limit, offset := normalizePage(page, pageSize)
	videos, total, err := uc.videoRepo.List(ctx, limit, offset)
	if err != nil {
		return Page[entity.VideoSummary]{}, err
	}
	return NewPage(videos, p, size, total), nil
}

func (uc *videoUseCase) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) (Page[entity.VideoSummary], error) {
	if ownerID == "" {
		return Page[entity.VideoSummary]{}, fmt.Errorf("%w: owner id is required", entity.ErrValidation)
	}

	p, size, limit, offset := normalizePage(page, pageSize)
	videos, total, err := uc.videoRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return Page[entity.VideoSummary]{}, err
	}
	return NewPage(videos, p, size, total), nil
}

func (uc *videoUseCase) uploadMedia(ownerID string, file *multipart.FileHeader, fallbackType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackType
	}

	key := fmt.Sprintf("videos/%s/%s%s", ownerID, uuid.New().String(), fileExtension(file.Filename))
	url, err := uc.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	return url, nil
}

func fileExtension(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx >= 0 {
		return filename[idx:]
	}
	return ""
}
