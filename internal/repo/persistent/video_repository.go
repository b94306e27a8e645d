package persistent

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, videoID string) (*entity.Video, error)
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, videoID string) error
	List(ctx context.Context, limit, offset int) ([]entity.VideoSummary, int64, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]entity.VideoSummary, int64, error)
	ListByIDs(ctx context.Context, videoIDs []string) ([]entity.VideoSummary, error)
	IncrementViews(ctx context.Context, videoID string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	m := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateErr(err)
	}
	video.ID = m.ID
	video.CreatedAt = m.CreatedAt
	video.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, videoID string) (*entity.Video, error) {
	var m model.VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", videoID).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToVideoEntity(&m), nil
}

func (r *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"thumbnail_url": video.ThumbnailURL,
			"is_published":  video.IsPublished,
		}).Error
	return translateErr(err)
}

func (r *videoRepository) Delete(ctx context.Context, videoID string) error {
	return translateErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", videoID).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", videoID).Delete(&model.VideoModel{}).Error
	}))
}

// List returns published videos, newest first, with owner summaries. The
// id tiebreaker keeps page boundaries stable for rows created in the same
// instant.
func (r *videoRepository) List(ctx context.Context, limit, offset int) ([]entity.VideoSummary, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.VideoModel{}).Where("is_published = ?", true), limit, offset)
}

func (r *videoRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]entity.VideoSummary, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.VideoModel{}).Where("owner_id = ?", ownerID), limit, offset)
}

func (r *videoRepository) list(ctx context.Context, query *gorm.DB, limit, offset int) ([]entity.VideoSummary, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translateErr(err)
	}

	var ms []model.VideoModel
	err := query.Session(&gorm.Session{}).
		Preload("Owner").
		Order("created_at DESC, id").
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

// ListByIDs resolves a watch-history id sequence to summaries. Order is
// the caller's concern since the input sequence carries it.
func (r *videoRepository) ListByIDs(ctx context.Context, videoIDs []string) ([]entity.VideoSummary, error) {
	if len(videoIDs) == 0 {
		return []entity.VideoSummary{}, nil
	}

	var ms []model.VideoModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id IN ?", videoIDs).
		Find(&ms).Error
	if err != nil {
		return nil, translateErr(err)
	}

	summaries := make([]entity.VideoSummary, 0, len(ms))
	for i := range ms {
		summaries = append(summaries, ToVideoSummary(&ms[i]))
	}
	return summaries, nil
}

// IncrementViews bumps the stored view counter by one. This is the only
// stored counter in the system; like and subscriber counts are always
// derived from edge rows at read time.
func (r *videoRepository) IncrementViews(ctx context.Context, videoID string) error {
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", videoID).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
	return translateErr(err)
}
