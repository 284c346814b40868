package middleware

import (
	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/identity"
	"github.com/cognigames/cogni-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProtected verifies the bearer token and stores the caller's identity.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return JWTProtectedUnless(cfg, nil)
}

// JWTProtectedUnless is JWTProtected, skipped for requests where skip
// returns true.
func JWTProtectedUnless(cfg *config.Config, skip func(*fiber.Ctx) bool) fiber.Handler {
	tokens := services.NewTokenService(cfg)

	return jwtware.New(jwtware.Config{
		Filter:     skip,
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, _ := c.Locals("user").(*jwt.Token)
			if token == nil {
				return unauthorized(c)
			}
			id, err := tokens.Validate(token.Raw)
			if err != nil {
				return unauthorized(c)
			}
			identity.Set(c, id)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}
