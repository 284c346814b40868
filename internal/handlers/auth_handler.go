package handlers

import (
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "register")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login accepts JSON or a form-encoded username/password pair.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "login")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.authService.Refresh(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "refresh")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.UserContext(), &req); err != nil {
		return respondError(c, err, "logout")
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return respondError(c, err, "me")
	}
	user, err := h.userService.Resolve(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "me")
	}
	return c.JSON(dto.MeResponse{
		User:    services.ToUserResponse(user),
		Message: "Authenticated as " + user.Username,
	})
}
