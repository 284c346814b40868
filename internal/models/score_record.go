package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScoreRecord is the result of one submitted game session. Rows are only
// ever inserted.
type ScoreRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_scores_user_game" json:"user_id"`
	GameID     int            `gorm:"not null;index:idx_scores_user_game;index" json:"game_id"`
	Score      float64        `gorm:"not null" json:"score"`
	TrialCount int            `gorm:"not null" json:"trial_count"`
	Trials     datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Date       time.Time      `gorm:"not null;index" json:"date"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	Game       Game           `gorm:"foreignKey:GameID" json:"-"`
}

func (ScoreRecord) TableName() string { return "score_records" }
