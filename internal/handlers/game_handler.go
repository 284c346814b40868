package handlers

import (
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type GameHandler struct {
	gameService  *services.GameService
	scoreService *services.ScoreService
}

func NewGameHandler(gameService *services.GameService, scoreService *services.ScoreService) *GameHandler {
	return &GameHandler{gameService: gameService, scoreService: scoreService}
}

func (h *GameHandler) List(c *fiber.Ctx) error {
	games, err := h.gameService.List(c.UserContext())
	if err != nil {
		return respondError(c, err, "list_games")
	}
	return c.JSON(fiber.Map{"games": games, "total": len(games)})
}

// Create adds a game definition. Admin only.
func (h *GameHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	game, err := h.gameService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "create_game")
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

func (h *GameHandler) Scores(c *fiber.Ctx) error {
	gameID, err := c.ParamsInt("id")
	if err != nil || gameID <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid game ID")
	}

	records, err := h.scoreService.ListForGame(c.UserContext(), gameID)
	if err != nil {
		return respondError(c, err, "list_game_scores")
	}
	return c.JSON(toScoreList(records))
}

// BelowAverage reports whether the caller's mean for the game is below
// the mean over all players.
func (h *GameHandler) BelowAverage(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return respondError(c, err, "below_average")
	}
	gameID, err := c.ParamsInt("id")
	if err != nil || gameID <= 0 {
		return fail(c, fiber.StatusBadRequest, "Invalid game ID")
	}

	below, err := h.scoreService.IsBelowAverage(c.UserContext(), gameID, id.UserID)
	if err != nil {
		return respondError(c, err, "below_average")
	}
	return c.JSON(dto.BelowAverageResponse{GameID: gameID, BelowAverage: below})
}
