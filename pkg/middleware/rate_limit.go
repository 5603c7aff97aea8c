package middleware

import (
	"strconv"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/common"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/prometheus"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(logger *logrus.Logger, limiter *ratelimit.Limiter) Middleware {
	return &rateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
	}
}

// Middleware gates the request on the caller's fixed-window quota and
// surfaces the standard X-RateLimit headers. The consumed client identifier
// is stored in locals for downstream handlers.
func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		clientID := ratelimit.ExtractClientID(ctx.GetReqHeaders())
		ctx.Locals(string(common.ClientIDContextKey), clientID)

		result := m.limiter.Check(clientID)

		ctx.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		ctx.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.Unix(), 10))

		if !result.Allowed {
			prometheus.RateLimitRejected.Inc()
			m.logger.WithFields(logrus.Fields{
				"client_id":   clientID,
				"retry_after": result.RetryAfterSeconds,
			}).Warn("rate limit exceeded")

			ctx.Set("Retry-After", strconv.Itoa(result.RetryAfterSeconds))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":               "Rate limit exceeded",
				"retry_after_seconds": result.RetryAfterSeconds,
			})
		}

		return ctx.Next()
	}
}
