package identity

import (
	"net/http/httptest"
	"testing"

	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	want := services.Identity{UserID: uuid.New(), Username: "alice"}

	app := fiber.New()
	app.Get("/anon", func(c *fiber.Ctx) error {
		_, ok := Get(c)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, UserID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/auth", func(c *fiber.Ctx) error {
		Set(c, want)
		return c.Next()
	}, func(c *fiber.Ctx) error {
		got, ok := Get(c)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, want.UserID, UserID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, path := range []string{"/anon", "/auth"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}
