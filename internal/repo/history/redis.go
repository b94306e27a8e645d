package history

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store keeps each user's watch history as a redis list, appended on the
// right so the sequence reads oldest-to-newest. Duplicates are expected:
// rewatching a video appends again.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(userID string) string {
	return fmt.Sprintf("watch_history:%s", userID)
}

func (s *Store) Append(ctx context.Context, userID, videoID string) error {
	return s.client.RPush(ctx, key(userID), videoID).Err()
}

func (s *Store) List(ctx context.Context, userID string) ([]string, error) {
	return s.client.LRange(ctx, key(userID), 0, -1).Result()
}
