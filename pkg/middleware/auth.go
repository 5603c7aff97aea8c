package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	tokenHeader         = "X-SendSafe-Token"
)

// authMiddleware checks the single shared static token. This is abuse
// throttling for an extension backend, not per-user identity.
type authMiddleware struct {
	logger *logrus.Logger
	token  string
}

func NewAuthMiddleware(logger *logrus.Logger, token string) Middleware {
	return &authMiddleware{
		logger: logger,
		token:  token,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if m.token == "" {
			m.logger.Error("auth token is not configured")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server misconfigured"})
		}

		provided := ctx.Get(tokenHeader)
		if provided == "" {
			authHeader := ctx.Get(authorizationHeader)
			if strings.HasPrefix(authHeader, bearerPrefix) {
				provided = strings.TrimPrefix(authHeader, bearerPrefix)
			}
		}

		if provided == "" {
			m.logger.Debug("no auth token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			m.logger.Debug("invalid auth token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		return ctx.Next()
	}
}
