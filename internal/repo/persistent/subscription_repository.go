package persistent

import (
	"context"
	"errors"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

// SubscriptionRepository is the edge store for subscriber->channel edges.
// The (subscriber_id, channel_id) unique index serializes concurrent
// toggles.
type SubscriptionRepository interface {
	Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)
	Create(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)
	Delete(ctx context.Context, subscriptionID string) (bool, error)
	Exists(ctx context.Context, subscriberID, channelID string) (bool, error)
	CountForChannel(ctx context.Context, channelID string) (int64, error)
	CountForSubscriber(ctx context.Context, subscriberID string) (int64, error)
	ListSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	var m model.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&m).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return ToSubscriptionEntity(&m), nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	m := &model.SubscriptionModel{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToSubscriptionEntity(m), nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriptionID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", subscriptionID).Delete(&model.SubscriptionModel{})
	if res.Error != nil {
		return false, translateErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	_, err := r.Find(ctx, subscriberID, channelID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) CountForChannel(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

func (r *subscriptionRepository) CountForSubscriber(ctx context.Context, subscriberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error) {
	return r.listProfiles(ctx, "subscriptions.channel_id = ?", channelID, "subscriptions.subscriber_id")
}

func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error) {
	return r.listProfiles(ctx, "subscriptions.subscriber_id = ?", subscriberID, "subscriptions.channel_id")
}

func (r *subscriptionRepository) listProfiles(ctx context.Context, cond, arg, joinColumn string) ([]entity.UserSummary, error) {
	var ms []model.UserModel
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Joins("INNER JOIN subscriptions ON "+joinColumn+" = users.id").
		Where(cond, arg).
		Order("subscriptions.created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, translateErr(err)
	}

	summaries := make([]entity.UserSummary, 0, len(ms))
	for i := range ms {
		summaries = append(summaries, ToUserEntity(&ms[i]).Summary())
	}
	return summaries, nil
}
