package persistent

import (
	"context"
	"errors"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

// LikeRepository is the edge store for likes. Create relies on the
// (user_id, target_kind, target_id) unique index for duplicate rejection;
// no method does a check-then-act on the caller's behalf.
type LikeRepository interface {
	Find(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error)
	Create(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error)
	Delete(ctx context.Context, likeID string) (bool, error)
	Exists(ctx context.Context, userID string, target entity.LikeTarget) (bool, error)
	CountForTarget(ctx context.Context, target entity.LikeTarget) (int64, error)
	ListLikedVideos(ctx context.Context, userID string, limit, offset int) ([]entity.VideoSummary, int64, error)
	DeleteForTarget(ctx context.Context, target entity.LikeTarget) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	var m model.LikeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(target.Kind), target.ID).
		First(&m).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return ToLikeEntity(&m), nil
}

func (r *likeRepository) Create(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	m := &model.LikeModel{
		UserID:     userID,
		TargetKind: string(target.Kind),
		TargetID:   target.ID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToLikeEntity(m), nil
}

// Delete removes a like by id and reports whether a row was actually
// deleted. false without error means another writer got there first.
func (r *likeRepository) Delete(ctx context.Context, likeID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", likeID).Delete(&model.LikeModel{})
	if res.Error != nil {
		return false, translateErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID string, target entity.LikeTarget) (bool, error) {
	_, err := r.Find(ctx, userID, target)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *likeRepository) CountForTarget(ctx context.Context, target entity.LikeTarget) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Count(&count).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return count, nil
}

// ListLikedVideos returns the videos a user has liked, most recently liked
// first, with owner summaries preloaded.
func (r *likeRepository) ListLikedVideos(ctx context.Context, userID string, limit, offset int) ([]entity.VideoSummary, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Joins("INNER JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", string(entity.TargetVideo)).
		Where("likes.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translateErr(err)
	}

	var ms []model.VideoModel
	err := base.
		Preload("Owner").
		Order("likes.created_at DESC, videos.id").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, translateErr(err)
	}

	summaries := make([]entity.VideoSummary, 0, len(ms))
	for i := range ms {
		summaries = append(summaries, ToVideoSummary(&ms[i]))
	}
	return summaries, total, nil
}

// DeleteForTarget removes every like edge pointing at a target. Used when
// the target entity itself is deleted.
func (r *likeRepository) DeleteForTarget(ctx context.Context, target entity.LikeTarget) error {
	err := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID).
		Delete(&model.LikeModel{}).Error
	return translateErr(err)
}
