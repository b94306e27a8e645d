package entity

import "time"

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Password      string    `json:"-"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url"`
	IsPremium     bool      `json:"is_premium"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserSummary is the public slice of a user joined into other documents.
// Credentials never appear here.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

// ChannelProfile is the viewer-relative read-model for a user's channel
// page. IsSubscribed is nil when the viewer is looking at their own
// channel: subscribing to oneself is not a valid state, so the flag is
// omitted rather than reported as false.
type ChannelProfile struct {
	UserSummary
	CoverImageURL     string `json:"cover_image_url"`
	SubscribersCount  int64  `json:"subscribers_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      *bool  `json:"is_subscribed,omitempty"`
}
