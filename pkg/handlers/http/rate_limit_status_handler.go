package http

import (
	"github.com/ahmedzukhrufrao/SendSafe/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitStatusHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
}

func NewRateLimitStatusHandler(logger *logrus.Logger, limiter *ratelimit.Limiter) Handler {
	return &rateLimitStatusHandler{
		logger:  logger,
		limiter: limiter,
	}
}

// Handle reports the caller's remaining quota without consuming any of it.
func (h *rateLimitStatusHandler) Handle(c *fiber.Ctx) error {
	clientID := ratelimit.ExtractClientID(c.GetReqHeaders())
	result := h.limiter.Peek(clientID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"client_id": clientID,
		"status":    result,
	})
}
