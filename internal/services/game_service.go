package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cognigames/cogni-backend/internal/catalog"
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/cognigames/cogni-backend/internal/scoring"
)

type GameService struct {
	games GameStore
}

func NewGameService(games GameStore) *GameService {
	return &GameService{games: games}
}

func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	return s.games.List(ctx)
}

func (s *GameService) Get(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.games.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

func (s *GameService) GetByType(ctx context.Context, gameType scoring.GameType) (*models.Game, error) {
	game, err := s.games.GetByType(ctx, gameType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

// Create adds a game definition. Both the id and the type must be unused.
func (s *GameService) Create(ctx context.Context, req *dto.CreateGameRequest) (*models.Game, error) {
	if err := dto.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	gameType, err := scoring.ParseGameType(req.GameType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if _, err := s.games.Get(ctx, req.ID); err == nil {
		return nil, ErrGameExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check game id: %w", err)
	}
	if _, err := s.games.GetByType(ctx, gameType); err == nil {
		return nil, ErrGameExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check game type: %w", err)
	}

	name := req.Name
	if name == "" {
		name = catalog.DisplayName(gameType)
	}
	game := models.Game{ID: req.ID, Type: gameType, Name: name}
	if err := s.games.Create(ctx, &game); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrGameExists
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// Seed creates the catalog's definitions that are not stored yet. Entries
// that clash with an existing id or type are skipped.
func (s *GameService) Seed(ctx context.Context, defs []catalog.Definition) (int, error) {
	created := 0
	for _, def := range defs {
		_, err := s.Create(ctx, &dto.CreateGameRequest{ID: def.ID, GameType: string(def.Type), Name: def.Name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrGameExists):
			slog.Debug("game already seeded", "game_id", def.ID, "game_type", def.Type)
		default:
			return created, fmt.Errorf("seed game %d: %w", def.ID, err)
		}
	}
	return created, nil
}
