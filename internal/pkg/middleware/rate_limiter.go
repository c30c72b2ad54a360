package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/pawsfam/pawhaven/internal/pkg/constants"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Redis key prefix
	Limit       int           // requests allowed per period
	Period      time.Duration // fixed window length
}

// RateLimiterMiddleware limits requests per client IP and route with a fixed
// window counter in Redis. Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			n, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.Err(err))
				return next(c)
			}
			if n == 1 {
				// A counter without a TTL would block the client for good.
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Rate limiter window not set", logger.Err(err))
					config.RedisClient.Del(ctx, key)
					return next(c)
				}
			}

			count := int(n)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				reset, err := config.RedisClient.TTL(ctx, key).Result()
				switch {
				case err != nil:
					reset = config.Period
				case reset < 0:
					config.RedisClient.Expire(ctx, key, config.Period)
					reset = config.Period
				}
				header.Set("Retry-After", strconv.FormatInt(int64(reset.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitPrefix,
		Limit:       limit,
		Period:      period,
	})
}
