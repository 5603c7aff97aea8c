package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(token string) *fiber.App {
	app := fiber.New()
	logger := logrus.New()
	mw := middleware.NewAuthMiddleware(logger, token)
	app.Use(mw.Middleware())
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthMiddleware_TokenHeader(t *testing.T) {
	app := setupAuthApp("secret-token")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-SendSafe-Token", "secret-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	app := setupAuthApp("secret-token")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer secret-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := setupAuthApp("secret-token")

	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := setupAuthApp("secret-token")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-SendSafe-Token", "wrong-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	app := setupAuthApp("secret-token")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "secret-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UnconfiguredToken(t *testing.T) {
	app := setupAuthApp("")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-SendSafe-Token", "anything")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
