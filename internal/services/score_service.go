package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cognigames/cogni-backend/internal/metrics"
	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScoreService struct {
	scores ScoreStore
	games  *GameService
	users  *UserService
	now    func() time.Time
}

func NewScoreService(scores ScoreStore, games *GameService, users *UserService) *ScoreService {
	return &ScoreService{
		scores: scores,
		games:  games,
		users:  users,
		now:    time.Now,
	}
}

// Submit scores one session for the caller and stores the record. The
// owner is always the token identity; nothing in the submitted payload can
// name another user.
func (s *ScoreService) Submit(ctx context.Context, id Identity, gameType scoring.GameType, trials []scoring.Trial) (*models.ScoreRecord, error) {
	record, err := s.submit(ctx, id, gameType, trials)

	outcome := metrics.OutcomeAccepted
	switch {
	case errors.Is(err, scoring.ErrInvalidInput):
		outcome = metrics.OutcomeRejected
	case err != nil:
		outcome = metrics.OutcomeFailed
	}
	score := 0.0
	if record != nil {
		score = record.Score
	}
	metrics.RecordSubmission(string(gameType), outcome, score, len(trials))

	return record, err
}

func (s *ScoreService) submit(ctx context.Context, id Identity, gameType scoring.GameType, trials []scoring.Trial) (*models.ScoreRecord, error) {
	user, err := s.users.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	game, err := s.games.GetByType(ctx, gameType)
	if err != nil {
		return nil, err
	}

	score, err := scoring.ComputeSessionScore(gameType, trials)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(trials)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trials: %w", err)
	}

	record := models.ScoreRecord{
		ID:         uuid.New(),
		UserID:     user.ID,
		GameID:     game.ID,
		Score:      score,
		TrialCount: len(trials),
		Trials:     datatypes.JSON(raw),
		Date:       s.now().UTC(),
	}
	if err := s.scores.Create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListForUser returns the user's records, optionally for a single game.
func (s *ScoreService) ListForUser(ctx context.Context, userID uuid.UUID, gameID *int) ([]models.ScoreRecord, error) {
	if gameID != nil {
		if _, err := s.games.Get(ctx, *gameID); err != nil {
			return nil, err
		}
	}
	return s.scores.Find(ctx, repository.ScoreFilter{UserID: &userID, GameID: gameID})
}

func (s *ScoreService) ListForGame(ctx context.Context, gameID int) ([]models.ScoreRecord, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		return nil, err
	}
	return s.scores.Find(ctx, repository.ScoreFilter{GameID: &gameID})
}

// IsBelowAverage reports whether the user's mean score for the game is
// strictly below the mean over all users. A user without records for the
// game is never below average.
func (s *ScoreService) IsBelowAverage(ctx context.Context, gameID int, userID uuid.UUID) (bool, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		return false, err
	}

	mine, err := s.scores.Aggregate(ctx, repository.ScoreFilter{UserID: &userID, GameID: &gameID})
	if err != nil {
		return false, fmt.Errorf("failed to aggregate user scores: %w", err)
	}
	if mine.Count == 0 {
		return false, nil
	}

	global, err := s.scores.Aggregate(ctx, repository.ScoreFilter{GameID: &gameID})
	if err != nil {
		return false, fmt.Errorf("failed to aggregate game scores: %w", err)
	}
	return global.Mean > mine.Mean, nil
}
