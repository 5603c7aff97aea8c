package middleware

import (
	"strconv"
	"time"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct {
	enabled bool
}

func NewMetricsMiddleware(enabled bool) Middleware {
	return &metricsMiddleware{enabled: enabled}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.enabled {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		prometheus.RequestTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Route().Path).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
