package usecase

import (
	"context"
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type SubscriptionUseCase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error)
	GetSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	notifier         Notifier
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	notifier Notifier,
	log *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           log,
	}
}

func (uc *subscriptionUseCase) Toggle(ctx context.Context, subscriberID, channelID string) (entity.ToggleState, error) {
	if subscriberID == "" {
		return "", fmt.Errorf("%w: subscriber id is required", entity.ErrValidation)
	}
	if channelID == "" {
		return "", fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}
	// Self-edges are rejected before any store access.
	if subscriberID == channelID {
		return "", fmt.Errorf("%w: cannot subscribe to your own channel", entity.ErrInvalidEdge)
	}

	if _, err := uc.userRepo.GetByID(ctx, channelID); err != nil {
		return "", fmt.Errorf("channel %s: %w", channelID, err)
	}

	state, err := toggleEdge(ctx,
		func(ctx context.Context) (string, error) {
			sub, err := uc.subscriptionRepo.Find(ctx, subscriberID, channelID)
			if err != nil {
				return "", err
			}
			return sub.ID, nil
		},
		func(ctx context.Context) error {
			_, err := uc.subscriptionRepo.Create(ctx, subscriberID, channelID)
			return err
		},
		uc.subscriptionRepo.Delete,
	)
	if err != nil {
		return "", err
	}

	if state == entity.ToggleAdded && uc.notifier != nil {
		go uc.publishSubscribeNotification(subscriberID, channelID)
	}

	return state, nil
}

func (uc *subscriptionUseCase) GetSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}
	return uc.subscriptionRepo.ListSubscribers(ctx, channelID)
}

func (uc *subscriptionUseCase) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error) {
	if subscriberID == "" {
		return nil, fmt.Errorf("%w: subscriber id is required", entity.ErrValidation)
	}
	return uc.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
}

func (uc *subscriptionUseCase) publishSubscribeNotification(subscriberID, channelID string) {
	task := map[string]interface{}{
		"type":          "subscribe",
		"user_id":       channelID,
		"subscriber_id": subscriberID,
		"priority":      3,
	}
	if err := uc.notifier.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish subscribe notification: %v", err)
	}
}
