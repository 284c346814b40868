package handlers

import (
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService  *services.UserService
	scoreService *services.ScoreService
}

func NewUserHandler(userService *services.UserService, scoreService *services.ScoreService) *UserHandler {
	return &UserHandler{userService: userService, scoreService: scoreService}
}

// Get returns a user's profile. Callers may only read their own.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return respondError(c, err, "get_user")
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userService.GetSelf(c.UserContext(), id, userID)
	if err != nil {
		return respondError(c, err, "get_user")
	}
	return c.JSON(services.ToUserResponse(user))
}

// Scores lists the caller's own records, optionally filtered by ?game_id=.
func (h *UserHandler) Scores(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return respondError(c, err, "list_user_scores")
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	if userID != id.UserID {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var gameID *int
	if c.Query("game_id") != "" {
		v := c.QueryInt("game_id", 0)
		if v <= 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid game_id")
		}
		gameID = &v
	}

	records, err := h.scoreService.ListForUser(c.UserContext(), userID, gameID)
	if err != nil {
		return respondError(c, err, "list_user_scores")
	}
	return c.JSON(toScoreList(records))
}

// List returns every user. Admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "list_users")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, services.ToUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"users": out, "total": len(out)})
}
