package http

import (
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type clearAllRateLimitsHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewClearAllRateLimitsHandler(logger *logrus.Logger, limiter *ratelimit.Limiter) Handler {
	return &clearAllRateLimitsHandler{
		logger:  logger,
		limiter: limiter,
	}
}

func (h *clearAllRateLimitsHandler) Handle(c *fiber.Ctx) error {
	h.limiter.ClearAll()
	h.logger.Info("all rate limit entries cleared")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cleared": true})
}
