package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"orderintake/internal/pkg/observability"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RequestIDHeader carries the generated request identifier back to clients.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a UUID unless the client supplied one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// APIKeyHeader carries the admin credential.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth guards the admin routes with a shared key compared in constant
// time. An empty configured key rejects everything: admin access must be
// configured explicitly.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(APIKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    CodeUnauthorized,
					Message: "a valid API key is required",
				})
			}
			return next(c)
		}
	}
}

// RateLimiterConfig bounds how often one client may hit an endpoint.
type RateLimiterConfig struct {
	// Limit is the number of requests allowed per window.
	Limit int64
	// Window is the length of the fixed counting window.
	Window time.Duration
	// Prefix namespaces the redis keys of this limiter.
	Prefix string
}

// RateLimiter implements a fixed-window counter in redis: the first request
// in a window creates the key with an expiry, later requests increment it,
// and the window resets when the key expires. Counts are shared across
// instances because the state lives in redis, not in process memory.
//
// When redis is unreachable the request is allowed through: losing rate
// limiting is preferable to refusing every order.
func RateLimiter(client *redis.Client, cfg RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s", cfg.Prefix, c.RealIP())
			ctx := c.Request().Context()

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Warnf("rate limiter unavailable: %v", err)
				return next(c)
			}
			if count == 1 {
				client.Expire(ctx, key, cfg.Window)
			}

			if count > cfg.Limit {
				observability.ObserveOrderRejected(observability.ReasonRateLimited)
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{
					Code:    CodeRateLimited,
					Message: "too many orders, try again in a minute",
				})
			}

			return next(c)
		}
	}
}
