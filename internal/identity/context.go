// Package identity carries the authenticated caller through a request.
package identity

import (
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsKey = "identity"

// Set stores the caller established by the auth middleware.
func Set(c *fiber.Ctx, id services.Identity) {
	c.Locals(localsKey, id)
}

// Get returns the caller. ok is false on routes without the auth middleware.
func Get(c *fiber.Ctx) (services.Identity, bool) {
	id, ok := c.Locals(localsKey).(services.Identity)
	if !ok || id.UserID == uuid.Nil {
		return services.Identity{}, false
	}
	return id, true
}

// UserID is a shorthand for the caller's id, or uuid.Nil.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := Get(c)
	return id.UserID
}
