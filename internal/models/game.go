package models

import (
	"time"

	"github.com/cognigames/cogni-backend/internal/scoring"
)

// Game is a game definition. IDs are chosen by the backend that creates
// them and there is at most one definition per game type.
type Game struct {
	ID        int              `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Type      scoring.GameType `gorm:"size:20;not null;uniqueIndex" json:"game_type"`
	Name      string           `gorm:"size:100" json:"name"`
	CreatedAt time.Time        `json:"created_at"`
}
