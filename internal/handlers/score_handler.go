package handlers

import (
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
}

func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// Submit scores one session of the game named in the path. The record is
// owned by the token's user; a user id in the body is ignored.
func (h *ScoreHandler) Submit(c *fiber.Ctx) error {
	id, err := caller(c)
	if err != nil {
		return respondError(c, err, "submit_score")
	}

	gameType, err := scoring.ParseGameType(c.Params("game_type"))
	if err != nil {
		return fail(c, fiber.StatusNotFound, err.Error())
	}

	trials, err := scoring.DecodeTrials(gameType, c.Body())
	if err != nil {
		return respondError(c, err, "submit_score")
	}

	record, err := h.scoreService.Submit(c.UserContext(), id, gameType, trials)
	if err != nil {
		return respondError(c, err, "submit_score")
	}

	resp := toScoreResponse(record)
	resp.GameType = gameType.String()
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func toScoreResponse(r *models.ScoreRecord) dto.ScoreResponse {
	return dto.ScoreResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		GameID:     r.GameID,
		Score:      r.Score,
		TrialCount: r.TrialCount,
		Date:       r.Date,
	}
}

func toScoreList(records []models.ScoreRecord) dto.ScoreListResponse {
	out := make([]dto.ScoreResponse, 0, len(records))
	for i := range records {
		out = append(out, toScoreResponse(&records[i]))
	}
	return dto.ScoreListResponse{Scores: out, Total: len(out)}
}
