package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(requestsPerMinute, burst int) *IPRateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	if burst <= 0 {
		burst = requestsPerMinute
	}
	return &IPRateLimiter{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (l *IPRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		l.evictIdle(now)
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// evictIdle runs under mu.
func (l *IPRateLimiter) evictIdle(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idle {
			delete(l.limiters, ip)
		}
	}
}

func (l *IPRateLimiter) Middleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.allow(ip) {
			logger.Warn("rate limit exceeded", slog.String("ip", ip))
			abortRateLimited(c)
			return
		}
		c.Next()
	}
}

// RedisRateLimiter is a fixed-window limiter shared by every instance pointing at the same Redis.
type RedisRateLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

var redisFixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisRateLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string) *RedisRateLimiter {
	if limit <= 0 {
		limit = 120
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "ybl:rl"
	}
	return &RedisRateLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

// Middleware lets requests through when Redis fails and failOpen is set; otherwise it answers 503.
func (rl *RedisRateLimiter) Middleware(logger *slog.Logger, failOpen bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + c.ClientIP()
		count, err := rl.incr(c.Request.Context(), key)
		if err != nil {
			logger.Warn("redis rate limiter error", slog.Any("err", err))
			if failOpen {
				c.Next()
				return
			}
			writeError(c, http.StatusServiceUnavailable, kindUnavailable, "rate limiter unavailable", nil)
			c.Abort()
			return
		}
		if count > int64(rl.limit) {
			abortRateLimited(c)
			return
		}
		c.Next()
	}
}

func (rl *RedisRateLimiter) incr(ctx context.Context, key string) (int64, error) {
	ms := rl.window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}
	res, err := redisFixedWindowScript.Run(ctx, rl.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

func abortRateLimited(c *gin.Context) {
	writeError(c, http.StatusTooManyRequests, kindRateLimited, "rate limit exceeded, try again later", nil)
	c.Abort()
}
