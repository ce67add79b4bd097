package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamereviews/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// RateLimitConfig configures a Redis-backed limiter.
type RateLimitConfig struct {
	Redis  *redis.Client
	Env    string
	Limit  int
	Window time.Duration
	Policy FailPolicy
	// Resource names the counter; the request path is used when empty.
	Resource string
}

func rateLimitBypassed(env string) bool {
	switch env {
	case "", "test", "development", "stress":
		return true
	}
	return false
}

// CheckRateLimit checks if a resource has exceeded its rate limit.
// Returns true if allowed, false if limit exceeded.
// Rate limiting is disabled when env is "test", "development" or "stress" (or empty).
func CheckRateLimit(ctx context.Context, rdb *redis.Client, env, resource, id string, limit int, window time.Duration) (bool, error) {
	if rateLimitBypassed(env) {
		return true, nil
	}

	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and set EXPIRE if new
	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		observability.RedisErrorRate.WithLabelValues("incr").Inc()
		return false, err
	}
	if cnt == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			observability.RedisErrorRate.WithLabelValues("expire").Inc()
		}
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing cfg.Limit requests per cfg.Window.
// It keys by the authenticated username when present, otherwise by remote IP.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if identity, ok := IdentityFrom(c); ok && identity.Username != "" {
			id = "user:" + identity.Username
		} else {
			id = "ip:" + c.IP()
		}

		resource := cfg.Resource
		if resource == "" {
			resource = c.Path()
		}

		allowed, err := CheckRateLimit(c.UserContext(), cfg.Redis, cfg.Env, resource, id, cfg.Limit, cfg.Window)
		if err != nil {
			if cfg.Policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit unavailable, failing closed",
					slog.String("resource", resource),
					slog.String("error", err.Error()),
				)
				return fiber.NewError(fiber.StatusServiceUnavailable, "rate limit unavailable")
			}
			return c.Next()
		}

		if !allowed {
			observability.RateLimitedRequests.WithLabelValues(resource).Inc()
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
		}
		return c.Next()
	}
}
