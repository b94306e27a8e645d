package persistent

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID string) error
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*entity.Comment, int64, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m := &model.CommentModel{
		VideoID:  comment.VideoID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateErr(err)
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var m model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToCommentEntity(&m), nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	return translateErr(r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.CommentModel{}).Error)
}

// ListByVideo returns one page of a video's comments, newest first, plus
// the total for page math.
func (r *commentRepository) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*entity.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, translateErr(err)
	}

	var ms []model.CommentModel
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC, id").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, translateErr(err)
	}

	comments := make([]*entity.Comment, 0, len(ms))
	for i := range ms {
		comments = append(comments, ToCommentEntity(&ms[i]))
	}
	return comments, total, nil
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error) {
	var ms []model.CommentModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id").
		Find(&ms).Error
	if err != nil {
		return nil, translateErr(err)
	}

	comments := make([]*entity.Comment, 0, len(ms))
	for i := range ms {
		comments = append(comments, ToCommentEntity(&ms[i]))
	}
	return comments, nil
}
