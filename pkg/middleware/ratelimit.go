package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a fixed-window counter per client IP and route. With a
// nil client (redis not configured) it is a no-op, so auth endpoints keep
// working in development without redis.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, ip)

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis outage must not take the API down with it
				logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				rdb.Expire(r.Context(), key, window)
			}

			if count > int64(limit) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
					zap.Int64("count", count))
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Too many requests, slow down", nil, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewRedisClient connects to redis for rate limiting. Returns nil when no
// address is configured or the server is unreachable; callers degrade by
// skipping rate limiting.
func NewRedisClient(cfg utils.RedisConfig, logger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, rate limiting disabled", zap.Error(err))
		rdb.Close()
		return nil
	}

	return rdb
}
