package ratelimit

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LoginLimiter throttles credential guessing per client key (IP, email).
// State lives in redis so the application itself stays stateless across
// requests. A nil client disables limiting entirely, and redis errors fail
// open: an unreachable limiter must never lock everyone out.
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    *zap.Logger
}

func NewLoginLimiter(client *redis.Client, limit int, window time.Duration, log *zap.Logger) *LoginLimiter {
	return &LoginLimiter{
		client: client,
		limit:  limit,
		window: window,
		log:    log,
	}
}

// Allow counts one attempt per key and reports whether all keys are still
// under the limit for the current window.
func (l *LoginLimiter) Allow(ctx context.Context, keys ...string) bool {
	if l == nil || l.client == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	for _, key := range keys {
		if key == "" {
			continue
		}

		// Keys are hashed so raw emails never land in redis.
		hashed := fmt.Sprintf("login_attempts:%x", sha256.Sum256([]byte(key)))

		count, err := l.client.Incr(ctx, hashed).Result()
		if err != nil {
			l.log.Warn("rate limiter unavailable", zap.Error(err))
			return true
		}

		if count == 1 {
			if err := l.client.Expire(ctx, hashed, l.window).Err(); err != nil {
				l.log.Warn("rate limiter expire failed", zap.Error(err))
			}
		}

		if int(count) > l.limit {
			return false
		}
	}

	return true
}
