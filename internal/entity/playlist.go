package entity

import "time"

type Playlist struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaylistView is a playlist joined with its videos in playlist order and
// the owner's username.
type PlaylistView struct {
	Playlist
	Owner  UserSummary    `json:"owner"`
	Videos []VideoSummary `json:"videos"`
}
