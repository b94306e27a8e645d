package persistent

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

// PlaylistRepository covers playlist rows plus their membership edges.
// Membership uses the (playlist_id, video_id) unique index the same way
// likes and subscriptions do; Position fixes listing order.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	Rename(ctx context.Context, playlistID, name string) error
	Delete(ctx context.Context, playlistID string) error

	FindMembership(ctx context.Context, playlistID, videoID string) (string, error)
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveMembership(ctx context.Context, membershipID string) (bool, error)
	RemoveVideoEverywhere(ctx context.Context, videoID string) error
	ListVideos(ctx context.Context, playlistID string) ([]entity.VideoSummary, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	m := &model.PlaylistModel{
		ID:      playlist.ID,
		OwnerID: playlist.OwnerID,
		Name:    playlist.Name,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateErr(err)
	}
	playlist.ID = m.ID
	playlist.CreatedAt = m.CreatedAt
	playlist.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	var m model.PlaylistModel
	if err := r.db.WithContext(ctx).Where("id = ?", playlistID).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return ToPlaylistEntity(&m), nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	var ms []model.PlaylistModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id").
		Find(&ms).Error
	if err != nil {
		return nil, translateErr(err)
	}

	playlists := make([]*entity.Playlist, 0, len(ms))
	for i := range ms {
		playlists = append(playlists, ToPlaylistEntity(&ms[i]))
	}
	return playlists, nil
}

func (r *playlistRepository) Rename(ctx context.Context, playlistID, name string) error {
	err := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).
		Where("id = ?", playlistID).
		Update("name", name).Error
	return translateErr(err)
}

func (r *playlistRepository) Delete(ctx context.Context, playlistID string) error {
	return translateErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", playlistID).Delete(&model.PlaylistModel{}).Error
	}))
}

// FindMembership returns the membership edge id for (playlist, video), or
// ErrNotFound.
func (r *playlistRepository) FindMembership(ctx context.Context, playlistID, videoID string) (string, error) {
	var m model.PlaylistVideoModel
	err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		First(&m).Error
	if err != nil {
		return "", translateErr(err)
	}
	return m.ID, nil
}

// AddVideo appends a membership edge at the next position. The unique
// index rejects duplicates; the position subquery and the insert run in
// one transaction so concurrent appends cannot share a slot silently.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	return translateErr(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		err := tx.Model(&model.PlaylistVideoModel{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error
		if err != nil {
			return err
		}

		return tx.Create(&model.PlaylistVideoModel{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   maxPos + 1,
		}).Error
	}))
}

func (r *playlistRepository) RemoveMembership(ctx context.Context, membershipID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", membershipID).Delete(&model.PlaylistVideoModel{})
	if res.Error != nil {
		return false, translateErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// RemoveVideoEverywhere drops a video from every playlist. Used on video
// deletion.
func (r *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID string) error {
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.PlaylistVideoModel{}).Error
	return translateErr(err)
}

func (r *playlistRepository) ListVideos(ctx context.Context, playlistID string) ([]entity.VideoSummary, error) {
	var ms []model.VideoModel
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Joins("INNER JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position").
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
