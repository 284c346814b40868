package repository

import (
	"context"
	"fmt"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"gorm.io/gorm"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("create game: %w", translate(err))
	}
	return nil
}

func (r *GameRepository) Get(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (r *GameRepository) GetByType(ctx context.Context, gameType scoring.GameType) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).Where("type = ?", gameType).First(&game).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
