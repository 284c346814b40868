package middleware

import (
	"strings"

	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/identity"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// HasAdminToken reports whether the request carries the configured
// X-Admin-Token.
func HasAdminToken(cfg *config.Config) func(*fiber.Ctx) bool {
	return func(c *fiber.Ctx) bool {
		return cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken
	}
}

// AdminRequired admits a request when any of these hold:
// 1. X-Admin-Token matches the configured token
// 2. the caller's id or email is in the configured admin lists
// 3. the caller's stored role is admin
func AdminRequired(users *services.UserService, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)
	adminUserIDs := parseCSV(cfg.AdminUserIDs)

	hasToken := HasAdminToken(cfg)

	return func(c *fiber.Ctx) error {
		if hasToken(c) {
			return c.Next()
		}

		id, ok := identity.Get(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if contains(adminUserIDs, id.UserID.String()) {
			return c.Next()
		}

		user, err := users.Resolve(c.UserContext(), id)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if contains(adminEmails, strings.ToLower(user.Email)) || user.Role == "admin" {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(p))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
