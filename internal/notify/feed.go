package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Default announcements shown when the feed is empty, so a fresh
// install still renders a populated dashboard.
var defaults = []string{"Bus running late", "Event at 3 PM"}

const maxFeedLen = 50

// Feed is a capped, newest-first notification list in Redis. The
// worker writes it, the dashboard reads it.
type Feed struct {
	client *redis.Client
	key    string
}

// NewFeed creates a feed under the given key.
func NewFeed(client *redis.Client, key string) *Feed {
	if key == "" {
		key = "edutrack:notifications"
	}
	return &Feed{client: client, key: key}
}

// Push prepends a notification and trims the feed to its cap.
func (f *Feed) Push(ctx context.Context, msg string) error {
	pipe := f.client.TxPipeline()
	pipe.LPush(ctx, f.key, msg)
	pipe.LTrim(ctx, f.key, 0, maxFeedLen-1)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent returns up to n notifications, newest first. An empty or
// unreachable feed falls back to the built-in announcements rather
// than failing the dashboard.
func (f *Feed) Recent(ctx context.Context, n int) []string {
	if n <= 0 {
		n = 10
	}
	msgs, err := f.client.LRange(ctx, f.key, 0, int64(n-1)).Result()
	if err != nil || len(msgs) == 0 {
		return defaults
	}
	return msgs
}
