package handlers

import (
	"time"

	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const serviceName = "CogniBackendApp"

type HealthHandler struct {
	ping  func() error
	games *services.GameService
}

// NewHealthHandler takes the database ping so the handler does not hold
// the connection itself.
func NewHealthHandler(ping func() error, games *services.GameService) *HealthHandler {
	return &HealthHandler{ping: ping, games: games}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": serviceName})
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"
	if err := h.ping(); err != nil {
		status = "degraded"
		dbStatus = "unhealthy: " + err.Error()
	}

	gameCount := 0
	if games, err := h.games.List(c.UserContext()); err == nil {
		gameCount = len(games)
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		GameCount: gameCount,
	})
}
