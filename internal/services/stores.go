package services

import (
	"context"
	"time"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"github.com/google/uuid"
)

// The store interfaces are satisfied by the gorm repositories and by the
// in-memory fakes in testutil.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Taken(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

type RefreshTokenStore interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	FindActive(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type GameStore interface {
	Create(ctx context.Context, game *models.Game) error
	Get(ctx context.Context, id int) (*models.Game, error)
	GetByType(ctx context.Context, gameType scoring.GameType) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
}

type ScoreStore interface {
	Create(ctx context.Context, record *models.ScoreRecord) error
	Find(ctx context.Context, filter repository.ScoreFilter) ([]models.ScoreRecord, error)
	Aggregate(ctx context.Context, filter repository.ScoreFilter) (repository.ScoreAggregate, error)
}
