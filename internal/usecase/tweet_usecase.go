package usecase

import (
	"context"
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
)

type TweetUseCase interface {
	Create(ctx context.Context, channelID, actorID, content string) (*entity.Tweet, error)
	Update(ctx context.Context, tweetID, actorID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID, actorID string) error
	ListChannelTweets(ctx context.Context, channelID, viewerID string) ([]entity.TweetView, error)
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	likeRepo  persistent.LikeRepository
	userRepo  persistent.UserRepository
}

func NewTweetUseCase(
	tweetRepo persistent.TweetRepository,
	likeRepo persistent.LikeRepository,
	userRepo persistent.UserRepository,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
	}
}

// Create posts a tweet on the actor's own channel; posting on someone
// else's channel is not a thing.
func (uc *tweetUseCase) Create(ctx context.Context, channelID, actorID, content string) (*entity.Tweet, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}
	if !canMutate(actorID, channelID) {
		return nil, fmt.Errorf("%w: cannot tweet on another user's channel", entity.ErrUnauthorized)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}

	tweet := &entity.Tweet{
		OwnerID: actorID,
		Content: strings.TrimSpace(content),
	}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) Update(ctx context.Context, tweetID, actorID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}

	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("tweet %s: %w", tweetID, err)
	}
	if !canMutate(actorID, tweet.OwnerID) {
		return nil, fmt.Errorf("%w: only the author can edit this tweet", entity.ErrUnauthorized)
	}

	if err := uc.tweetRepo.UpdateContent(ctx, tweetID, strings.TrimSpace(content)); err != nil {
		return nil, err
	}
	tweet.Content = strings.TrimSpace(content)
	return tweet, nil
}

func (uc *tweetUseCase) Delete(ctx context.Context, tweetID, actorID string) error {
	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return fmt.Errorf("tweet %s: %w", tweetID, err)
	}
	if !canMutate(actorID, tweet.OwnerID) {
		return fmt.Errorf("%w: only the author can delete this tweet", entity.ErrUnauthorized)
	}
	return uc.tweetRepo.Delete(ctx, tweetID)
}

// ListChannelTweets composes a channel's tweets with like counts and the
// viewer-relative flag. Anonymous viewers always get false.
func (uc *tweetUseCase) ListChannelTweets(ctx context.Context, channelID, viewerID string) ([]entity.TweetView, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}

	owner, err := uc.userRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", channelID, err)
	}

	tweets, err := uc.tweetRepo.ListByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.TweetView, 0, len(tweets))
	for _, tweet := range tweets {
		target := entity.LikeTarget{Kind: entity.TargetTweet, ID: tweet.ID}

		likesCount, err := uc.likeRepo.CountForTarget(ctx, target)
		if err != nil {
			return nil, err
		}

		isLiked := false
		if viewerID != "" {
			if isLiked, err = uc.likeRepo.Exists(ctx, viewerID, target); err != nil {
				return nil, err
			}
		}

		views = append(views, entity.TweetView{
			Tweet:      *tweet,
			Owner:      owner.Summary(),
			LikesCount: likesCount,
			IsLiked:    isLiked,
		})
	}
	return views, nil
}
