package entity

import "time"

type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoView is the composed, viewer-relative read-model for a single
// video: base fields joined with the owner's public profile, counts
// derived from the edge store, and flags relative to the requesting
// viewer. Anonymous viewers always get false flags.
type VideoView struct {
	Video
	Owner            UserSummary `json:"owner"`
	LikesCount       int64       `json:"likes_count"`
	SubscribersCount int64       `json:"subscribers_count"`
	IsLiked          bool        `json:"is_liked"`
	IsSubscribed     bool        `json:"is_subscribed"`
}

// VideoSummary is the slim shape used in listings and playlist contents.
type VideoSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`

	Owner *UserSummary `json:"owner,omitempty"`
}
