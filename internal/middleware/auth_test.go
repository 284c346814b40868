package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/identity"
	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
		AdminToken:      "admin-token",
	}
}

func protectedApp(t *testing.T, handler fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/private", handler, func(c *fiber.Ctx) error {
		id, ok := identity.Get(c)
		require.True(t, ok)
		return c.SendString(id.Username)
	})
	return app
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func get(t *testing.T, app *fiber.App, token string, headers ...string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTProtected(t *testing.T) {
	cfg := testConfig()
	app := protectedApp(t, JWTProtected(cfg))

	valid, err := services.NewTokenService(cfg).Issue(&models.User{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	sub := uuid.New().String()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"valid", valid, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"garbage", "not-a-jwt", fiber.StatusUnauthorized},
		{"no expiry", sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "username": "alice"}), fiber.StatusUnauthorized},
		{"expired", sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "username": "alice", "exp": time.Now().Add(-time.Minute).Unix()}), fiber.StatusUnauthorized},
		{"other algorithm", sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": sub, "username": "alice", "exp": exp}), fiber.StatusUnauthorized},
		{"no username", sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "exp": exp}), fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(t, app, tt.token))
		})
	}
}

func TestJWTProtectedUnless_SkipsWithAdminToken(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/private", JWTProtectedUnless(cfg, HasAdminToken(cfg)), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	assert.Equal(t, fiber.StatusNoContent, get(t, app, "", "X-Admin-Token", "admin-token"))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "", "X-Admin-Token", "wrong"))
}
