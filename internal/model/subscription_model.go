package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionModel stores one row per (subscriber, channel) pair, with
// the unique index enforcing the at-most-one-edge invariant under
// concurrent toggles. Hard-deleted like all edge rows.
type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:uniq_sub_pair;index"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:uniq_sub_pair;index"`
	CreatedAt    time.Time ``
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
