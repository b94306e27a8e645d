package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID           string         `gorm:"type:uuid;primary_key"`
	OwnerID      string         `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"not null"`
	Description  string         ``
	VideoURL     string         `gorm:"not null"`
	ThumbnailURL string         ``
	Duration     float64        `gorm:"default:0"`
	Views        int64          `gorm:"default:0"`
	IsPublished  bool           `gorm:"default:true"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time      ``
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Owner UserModel `gorm:"foreignKey:OwnerID"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
