package handlers

import (
	"errors"
	"log/slog"

	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/identity"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// respondError maps service errors to HTTP statuses. Anything unrecognised
// is logged and reported as a bare 500.
func respondError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput), errors.Is(err, services.ErrInvalidRequest):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, rootMessage(err))
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrGameNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUserTaken), errors.Is(err, services.ErrGameExists):
		return fail(c, fiber.StatusConflict, err.Error())
	}

	slog.Error("request failed",
		"action", action,
		"error", err,
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"user_id", identity.UserID(c).String(),
		"path", c.Path(),
	)
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// rootMessage hides token parsing detail from 401 responses.
func rootMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return services.ErrInvalidCredentials.Error()
	case errors.Is(err, services.ErrInvalidToken):
		return services.ErrInvalidToken.Error()
	default:
		return "Unauthorized"
	}
}

func caller(c *fiber.Ctx) (services.Identity, error) {
	id, ok := identity.Get(c)
	if !ok {
		return services.Identity{}, services.ErrUnauthorized
	}
	return id, nil
}
