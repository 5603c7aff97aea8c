package http

import (
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type sweepRateLimitsHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewSweepRateLimitsHandler(logger *logrus.Logger, limiter *ratelimit.Limiter) Handler {
	return &sweepRateLimitsHandler{
		logger:  logger,
		limiter: limiter,
	}
}

func (h *sweepRateLimitsHandler) Handle(c *fiber.Ctx) error {
	removed := h.limiter.Sweep()
	h.logger.WithField("removed", removed).Info("rate limit entries swept")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": removed})
}
