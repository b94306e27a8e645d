package entity

import "time"

// Subscription is an edge from a subscriber to a channel (both users).
// A user can never subscribe to themselves, and at most one edge exists
// per (subscriber, channel) pair.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}
