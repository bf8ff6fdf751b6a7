package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/metrics"
	"github.com/linskybing/residence-hub/pkg/types"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter counts hits for a key and reports whether the key is over budget
// and how long until it may retry.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RedisLimiter is a fixed-window counter shared by every API instance.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	if limit <= 0 {
		limit = 1
	}
	prefix = strings.TrimSuffix(prefix, ":")
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := l.prefix + ":" + key

	// EXPIRE NX arms the window on the first hit and on any key left without a TTL.
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("redis incr: %w", err)
	}
	count := incr.Val()
	if count > int64(l.limit) {
		retryAfter, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil || retryAfter < 0 {
			retryAfter = l.window
		}
		return false, retryAfter, nil
	}
	return true, 0, nil
}

// LocalLimiter keeps one token bucket per key in process memory. It is used
// when no Redis is configured.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   int
	window  time.Duration
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &LocalLimiter{buckets: make(map[string]*rate.Limiter), limit: limit, window: window}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Every(l.window/time.Duration(l.limit)), l.limit)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	r := b.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay, nil
	}
	return true, 0, nil
}

// RateLimit rejects a user's requests on the route with 429 once the
// limiter says so. Requests without claims are passed through; the auth
// middleware in front deals with them.
func RateLimit(limiter Limiter, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.Get("claims")
		if !ok {
			c.Next()
			return
		}
		cl, ok := claims.(*types.Claims)
		if !ok {
			c.Next()
			return
		}
		userID := strconv.FormatUint(uint64(cl.UserID), 10)

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), userID)
		if err != nil {
			// fail open
			slog.Error("Rate limiter unavailable", "route", route, "error", err)
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimited.WithLabelValues(route).Inc()
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": seconds,
			})
			return
		}
		c.Next()
	}
}
