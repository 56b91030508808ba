package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	ChatKeyPrefix = "chat:%d"
)

const (
	UserTTL = 5 * time.Minute
	ChatTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ChatKey(chatID uint) string {
	return fmt.Sprintf(ChatKeyPrefix, chatID)
}

// Aside implements the cache-aside pattern: dest is filled from the cached
// JSON value under key if present, otherwise load is invoked and its result
// stored with the given TTL. Cache failures degrade to a plain load; only
// load errors are returned.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Bytes(); err == nil {
			if err := json.Unmarshal(raw, dest); err == nil {
				return nil
			}
			// Corrupt entry; drop it and fall through to the loader.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateChat(ctx context.Context, chatID uint) {
	Invalidate(ctx, ChatKey(chatID))
}
