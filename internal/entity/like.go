package entity

import (
	"fmt"
	"time"
)

// TargetKind names the kind of entity a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// LikeTarget is a tagged reference to exactly one likeable entity. The
// constructor is the only way to build one, so a like can never point at
// zero targets or more than one.
type LikeTarget struct {
	Kind TargetKind
	ID   string
}

func NewLikeTarget(kind TargetKind, id string) (LikeTarget, error) {
	switch kind {
	case TargetVideo, TargetComment, TargetTweet:
	default:
		return LikeTarget{}, fmt.Errorf("%w: unknown like target kind %q", ErrValidation, kind)
	}
	if id == "" {
		return LikeTarget{}, fmt.Errorf("%w: %s id is required", ErrValidation, kind)
	}
	return LikeTarget{Kind: kind, ID: id}, nil
}

// Like is an edge from a user to a single target entity. At most one like
// exists per (user, target) pair.
type Like struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Target    LikeTarget `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToggleState reports the post-state of a toggle operation.
type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)
