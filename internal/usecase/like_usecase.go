package usecase

import (
	"context"
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type LikeUseCase interface {
	Toggle(ctx context.Context, userID string, target entity.LikeTarget) (entity.ToggleState, error)
	GetLikedVideos(ctx context.Context, userID string, page, pageSize int) (Page[entity.VideoSummary], error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	notifier    Notifier
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	notifier Notifier,
	log *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		notifier:    notifier,
		logger:      log,
	}
}

func (uc *likeUseCase) Toggle(ctx context.Context, userID string, target entity.LikeTarget) (entity.ToggleState, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", entity.ErrValidation)
	}

	ownerID, err := uc.resolveTargetOwner(ctx, target)
	if err != nil {
		return "", err
	}

	state, err := toggleEdge(ctx,
		func(ctx context.Context) (string, error) {
			like, err := uc.likeRepo.Find(ctx, userID, target)
			if err != nil {
				return "", err
			}
			return like.ID, nil
		},
		func(ctx context.Context) error {
			_, err := uc.likeRepo.Create(ctx, userID, target)
			return err
		},
		uc.likeRepo.Delete,
	)
	if err != nil {
		return "", err
	}

	if state == entity.ToggleAdded && uc.notifier != nil && ownerID != userID {
		go uc.publishLikeNotification(userID, ownerID, target)
	}

	return state, nil
}

// resolveTargetOwner verifies the like target exists and returns its
// owning user, which the notification fan-out needs.
func (uc *likeUseCase) resolveTargetOwner(ctx context.Context, target entity.LikeTarget) (string, error) {
	switch target.Kind {
	case entity.TargetVideo:
		video, err := uc.videoRepo.GetByID(ctx, target.ID)
		if err != nil {
			return "", fmt.Errorf("video %s: %w", target.ID, err)
		}
		return video.OwnerID, nil
	case entity.TargetComment:
		comment, err := uc.commentRepo.GetByID(ctx, target.ID)
		if err != nil {
			return "", fmt.Errorf("comment %s: %w", target.ID, err)
		}
		return comment.AuthorID, nil
	case entity.TargetTweet:
		tweet, err := uc.tweetRepo.GetByID(ctx, target.ID)
		if err != nil {
			return "", fmt.Errorf("tweet %s: %w", target.ID, err)
		}
		return tweet.OwnerID, nil
	default:
		return "", fmt.Errorf("%w: unknown like target kind %q", entity.ErrValidation, target.Kind)
	}
}

func (uc *likeUseCase) GetLikedVideos(ctx context.Context, userID string, page, pageSize int) (Page[entity.VideoSummary], error) {
	if userID == "" {
		return Page[entity.VideoSummary]{}, fmt.Errorf("%w: user id is required", entity.ErrValidation)
	}

	p, size, limit, offset := normalizePage(page, pageSize)
	videos, total, err := uc.likeRepo.ListLikedVideos(ctx, userID, limit, offset)
	if err != nil {
		return Page[entity.VideoSummary]{}, err
	}
	return NewPage(videos, p, size, total), nil
}

func (uc *likeUseCase) publishLikeNotification(likerID, ownerID string, target entity.LikeTarget) {
	task := map[string]interface{}{
		"type":        "like",
		"user_id":     ownerID,
		"liker_id":    likerID,
		"target_kind": string(target.Kind),
		"target_id":   target.ID,
		"priority":    3,
	}
	if err := uc.notifier.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish like notification: %v", err)
	}
}
