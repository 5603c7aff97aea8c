package http

import (
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitStatsHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewRateLimitStatsHandler(logger *logrus.Logger, limiter *ratelimit.Limiter) Handler {
	return &rateLimitStatsHandler{
		logger:  logger,
		limiter: limiter,
	}
}

func (h *rateLimitStatsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.limiter.Stats())
}
