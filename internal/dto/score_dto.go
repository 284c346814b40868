package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScoreResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	GameID     int       `json:"game_id"`
	GameType   string    `json:"game_type,omitempty"`
	Score      float64   `json:"score"`
	TrialCount int       `json:"trial_count"`
	Date       time.Time `json:"date"`
}

type ScoreListResponse struct {
	Scores []ScoreResponse `json:"scores"`
	Total  int             `json:"total"`
}

type BelowAverageResponse struct {
	GameID       int  `json:"game_id"`
	BelowAverage bool `json:"below_average"`
}
