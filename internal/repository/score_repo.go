package repository

import (
	"context"
	"fmt"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreFilter selects score records by user, by game, or both. Nil fields
// are not filtered on.
type ScoreFilter struct {
	UserID *uuid.UUID
	GameID *int
}

// ScoreAggregate is the count and mean score of the matching records.
type ScoreAggregate struct {
	Count int64
	Mean  float64
}

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Create(ctx context.Context, record *models.ScoreRecord) error {
	if err := r.db.WithContext(ctx).Omit("User", "Game").Create(record).Error; err != nil {
		return fmt.Errorf("create score record: %w", translate(err))
	}
	return nil
}

func (r *ScoreRepository) Find(ctx context.Context, filter ScoreFilter) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord
	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ScoreRepository) Aggregate(ctx context.Context, filter ScoreFilter) (ScoreAggregate, error) {
	var agg ScoreAggregate
	err := r.db.WithContext(ctx).
		Model(&models.ScoreRecord{}).
		Scopes(filter.scope).
		Select("COUNT(*) AS count, COALESCE(AVG(score), 0) AS mean").
		Scan(&agg).Error
	if err != nil {
		return ScoreAggregate{}, err
	}
	return agg, nil
}

func (f ScoreFilter) scope(db *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.GameID != nil {
		db = db.Where("game_id = ?", *f.GameID)
	}
	return db
}
