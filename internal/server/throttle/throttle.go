// Package throttle caps raw request volume per user with a fixed-window
// counter in Redis. It sits in front of the ledger-based rate ceiling and
// fails open: when Redis is unreachable requests are let through.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow counts one request for key. A non-nil error means the counter
	// could not be consulted and the request was allowed.
	Allow(ctx context.Context, key string) (bool, error)
}

type RedisLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(rdb redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
		prefix: "passport:throttle:",
		now:    time.Now,
	}
}

// Connect returns a client for addr, or nil when addr is empty.
func Connect(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (l *RedisLimiter) bucket(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s%s:%d", l.prefix, key, slot)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}

	k := l.bucket(key)
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("throttle %s: %w", key, err)
	}
	return incr.Val() <= l.limit, nil
}

type nop struct{}

// Nop allows everything.
func Nop() Limiter { return nop{} }

func (nop) Allow(context.Context, string) (bool, error) { return true, nil }
