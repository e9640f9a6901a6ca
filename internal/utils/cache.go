package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest. A nil client is a miss.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil // Caching disabled
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// VersionedKey returns base qualified by its current version. Entries written under an
// older version are never read again, so a slow reader cannot resurrect stale data.
func VersionedKey(ctx context.Context, rdb *redis.Client, base string) (string, error) {
	if rdb == nil {
		return base, nil // Caching disabled
	}
	version, err := rdb.Get(ctx, versionKey(base)).Int64()
	if err != nil && err != redis.Nil {
		return "", err // Redis error, skip the cache
	}
	return base + ":v" + strconv.FormatInt(version, 10), nil // Missing version counts as 0
}

// InvalidateCache moves base to a new version; older entries expire by TTL
func InvalidateCache(ctx context.Context, rdb *redis.Client, bases ...string) error {
	if rdb == nil || len(bases) == 0 {
		return nil // Nothing to do
	}
	pipe := rdb.TxPipeline()
	for _, base := range bases {
		pipe.Incr(ctx, versionKey(base)) // Bump version
	}
	_, err := pipe.Exec(ctx)
	return err
}

func versionKey(base string) string {
	return base + ":version"
}

// UserKey is the cache key of a user record
func UserKey(id uint) string {
	return "user:" + strconv.FormatUint(uint64(id), 10)
}

// StrategyKey is the cache key of a strategy record
func StrategyKey(id uint) string {
	return "strategy:" + strconv.FormatUint(uint64(id), 10)
}
