package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := viper.New()
	cfg.SetDefault("jwt.secret", testSecret)

	app := fiber.New()
	app.Use(middleware.VerifyBearer(cfg))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		claim := middleware.GetUser(ctx)
		return ctx.SendString(claim.Metadata.AdminID)
	})
	return app
}

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claim := &token.Claim{
		Metadata: token.Metadata{AdminID: "admin-1", Email: "admin@wasset.app"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestVerifyBearer(t *testing.T) {
	t.Run("valid token passes and exposes the claim", func(t *testing.T) {
		app := newTestApp(t)

		request := httptest.NewRequest("GET", "/whoami", nil)
		request.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		app := newTestApp(t)

		response, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		app := newTestApp(t)

		request := httptest.NewRequest("GET", "/whoami", nil)
		request.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Now().Add(time.Hour)))

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		app := newTestApp(t)

		request := httptest.NewRequest("GET", "/whoami", nil)
		request.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(-time.Hour)))

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		app := newTestApp(t)

		request := httptest.NewRequest("GET", "/whoami", nil)
		request.Header.Set("Authorization", "Basic abc")

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	})
}
