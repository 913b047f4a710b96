package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per normalized email using a Redis
// counter with a sliding TTL window.
// Key format: login_attempts:<email>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing max attempts per window.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{client: client, max: int64(max), window: window}
}

// Allow records one attempt for email and reports whether it is within the
// limit. The window starts at the first attempt and is not extended by
// subsequent ones.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

// Reset clears the counter for email, called after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + email
}
