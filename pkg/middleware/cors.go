package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsMiddleware struct {
	allowOrigins []string
	allowMethods []string
	maxAge       string
}

// NewCORSMiddleware builds the CORS policy for the browser extension. The
// extension's background page is the only expected cross-origin caller.
func NewCORSMiddleware(allowOrigins []string) Middleware {
	return &corsMiddleware{
		allowOrigins: allowOrigins,
		allowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		maxAge:       "3600",
	}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}

		allowed := false
		for _, o := range m.allowOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				allowed = true
				break
			}
		}
		if allowed {
			c.Set("Vary", "Origin")
			if hasStar(m.allowOrigins) {
				c.Set("Access-Control-Allow-Origin", "*")
			} else {
				c.Set("Access-Control-Allow-Origin", origin)
			}
			c.Set("Access-Control-Expose-Headers", "X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After")

			if c.Method() == fiber.MethodOptions {
				reqMethod := c.Get("Access-Control-Request-Method")
				if reqMethod != "" {
					c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
					reqHeaders := c.Get("Access-Control-Request-Headers")
					if reqHeaders != "" {
						c.Set("Access-Control-Allow-Headers", reqHeaders)
					} else {
						c.Set("Access-Control-Allow-Headers", "Content-Type, "+tokenHeader)
					}
					c.Set("Access-Control-Max-Age", m.maxAge)
					return c.SendStatus(fiber.StatusNoContent)
				}
			}
		}
		return c.Next()
	}
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
