package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	narrativeKeyPrefix = "coach:narrative:"
	versionKeyPrefix   = "coach:narrative:version:"
)

// NarrativeCache keeps generated coaching narratives per user. Entries are
// keyed by a per-user version that Invalidate bumps, so a narrative computed
// from inputs older than the last write is never served.
type NarrativeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNarrativeCache(client *redis.Client, ttl time.Duration) *NarrativeCache {
	return &NarrativeCache{client: client, ttl: ttl}
}

func narrativeKey(userID int, version int64) string {
	return fmt.Sprintf("%s%d:%d", narrativeKeyPrefix, userID, version)
}

func versionKey(userID int) string {
	return fmt.Sprintf("%s%d", versionKeyPrefix, userID)
}

// Version returns the user's current input version; 0 until the first write.
func (c *NarrativeCache) Version(ctx context.Context, userID int) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get narrative version: %w", err)
	}
	return version, nil
}

// Get returns the narrative cached for the given version and whether it was present.
func (c *NarrativeCache) Get(ctx context.Context, userID int, version int64) (string, bool, error) {
	text, err := c.client.Get(ctx, narrativeKey(userID, version)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cached narrative: %w", err)
	}
	return text, true, nil
}

func (c *NarrativeCache) Set(ctx context.Context, userID int, version int64, narrative string) error {
	if err := c.client.Set(ctx, narrativeKey(userID, version), narrative, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache narrative: %w", err)
	}
	return nil
}

// Invalidate moves the user to a new version; older entries expire on their own.
func (c *NarrativeCache) Invalidate(ctx context.Context, userID int) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate narrative: %w", err)
	}
	return nil
}

// NoopNarrativeCache is used when Redis is not configured.
type NoopNarrativeCache struct{}

func (NoopNarrativeCache) Version(context.Context, int) (int64, error) { return 0, nil }
func (NoopNarrativeCache) Get(context.Context, int, int64) (string, bool, error) {
	return "", false, nil
}
func (NoopNarrativeCache) Set(context.Context, int, int64, string) error { return nil }
func (NoopNarrativeCache) Invalidate(context.Context, int) error         { return nil }
