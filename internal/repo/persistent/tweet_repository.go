package persistent

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error)
	UpdateContent(ctx context.Context, tweetID, content string) error
	Delete(ctx context.Context, tweetID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Tweet, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	m := &model.TweetModel{
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateErr(err)
	}
	tweet.ID = m.ID
	tweet.CreatedAt = m.CreatedAt
	tweet.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error) {
	var m model.TweetModel
	if err := r.db.WithContext(ctx).Where("id = ?", tweetID).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToTweetEntity(&m), nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, tweetID, content string) error {
	err := r.db.WithContext(ctx).Model(&model.TweetModel{}).
		Where("id = ?", tweetID).
		Update("content", content).Error
	return translateErr(err)
}

func (r *tweetRepository) Delete(ctx context.Context, tweetID string) error {
	return translateErr(r.db.WithContext(ctx).Where("id = ?", tweetID).Delete(&model.TweetModel{}).Error)
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Tweet, error) {
	var ms []model.TweetModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id").
		Find(&ms).Error
	if err != nil {
		return nil, translateErr(err)
	}

	tweets := make([]*entity.Tweet, 0, len(ms))
	for i := range ms {
		tweets = append(tweets, ToTweetEntity(&ms[i]))
	}
	return tweets, nil
}
