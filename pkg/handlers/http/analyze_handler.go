package http

import (
	"errors"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/common"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/detection"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/sanitizer"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeHandler struct {
	logger  *logrus.Logger
	service detection.Service
}

func NewAnalyzeHandler(logger *logrus.Logger, service detection.Service) Handler {
	return &analyzeHandler{
		logger:  logger,
		service: service,
	}
}

// Handle runs one paste analysis. Validation failures are the caller's
// mistake and return 400; everything downstream of the model call degrades
// to a safe placeholder result inside the service, so this handler never
// surfaces a 500 for an off-format model reply.
func (h *analyzeHandler) Handle(c *fiber.Ctx) error {
	clientID, _ := c.Locals(string(common.ClientIDContextKey)).(string)
	log := h.logger.WithField("client_id", clientID)

	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Debug("invalid analyze request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	analysis, err := h.service.Analyze(c.Context(), req.Text)
	if err != nil {
		var validationErr *sanitizer.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
		}
		log.WithError(err).Error("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Analysis failed"})
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}
