package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID        string         `gorm:"type:uuid;primary_key"`
	OwnerID   string         `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"not null"`
	CreatedAt time.Time      ``
	UpdatedAt time.Time      ``
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Owner UserModel `gorm:"foreignKey:OwnerID"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel is a membership edge. The unique index keeps a
// playlist duplicate-free; Position preserves insertion order for stable
// listing. Hard-deleted so re-adding a video re-inserts cleanly.
type PlaylistVideoModel struct {
	ID         string    `gorm:"type:uuid;primary_key"`
	PlaylistID string    `gorm:"type:uuid;not null;uniqueIndex:uniq_playlist_video;index"`
	VideoID    string    `gorm:"type:uuid;not null;uniqueIndex:uniq_playlist_video"`
	Position   int64     `gorm:"autoIncrement:false;not null"`
	CreatedAt  time.Time ``
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}

func (pv *PlaylistVideoModel) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
