package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// The BFF keeps no session state of its own; the only thing it remembers is
// which bearer tokens were explicitly signed out, so the signout proxy route
// can record them until their own expiry. Stored in Redis when configured.

// package-level Redis client used for the sign-out blacklist (optional)
var blacklistClient *redis.Client

// SetBlacklistClient configures the Redis client used for blacklist operations.
// Safe to call with nil to disable blacklist features.
func SetBlacklistClient(c *redis.Client) {
	blacklistClient = c
}

// BlacklistToken stores the given bearer token in the Redis blacklist with TTL.
// If no Redis client is configured, this is a no-op and returns nil.
func BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if blacklistClient == nil {
		return nil
	}
	key := "blacklist:token:" + token
	return blacklistClient.Set(ctx, key, "1", ttl).Err()
}

// IsTokenBlacklisted returns true when the token exists in the Redis blacklist.
// If no Redis client is configured, returns (false, nil).
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if blacklistClient == nil {
		return false, nil
	}
	key := "blacklist:token:" + token
	exists, err := blacklistClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
