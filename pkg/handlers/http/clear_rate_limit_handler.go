package http

import (
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type clearRateLimitHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewClearRateLimitHandler(logger *logrus.Logger, limiter *ratelimit.Limiter) Handler {
	return &clearRateLimitHandler{
		logger:  logger,
		limiter: limiter,
	}
}

func (h *clearRateLimitHandler) Handle(c *fiber.Ctx) error {
	clientID := c.Params("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}

	existed := h.limiter.Clear(clientID)
	if !existed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client not tracked"})
	}

	h.logger.WithField("client_id", clientID).Info("rate limit entry cleared")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cleared": true})
}
