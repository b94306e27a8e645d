package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel stores one row per (user, target) pair. The composite unique
// index is the serialization point for concurrent toggles: a losing
// insert gets a unique violation instead of creating a duplicate edge.
// Rows are hard-deleted so a re-like cleanly re-inserts.
type LikeModel struct {
	ID         string    `gorm:"type:uuid;primary_key"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:uniq_like_user_target"`
	TargetKind string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_like_user_target;index:idx_like_target"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:uniq_like_user_target;index:idx_like_target"`
	CreatedAt  time.Time ``
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
