// Package testutil provides in-memory stores for service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/cognigames/cogni-backend/internal/scoring"
	"github.com/google/uuid"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) Taken(_ context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// Delete removes a user; used to simulate tokens outliving their user.
func (s *UserStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type RefreshTokenStore struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{tokens: make(map[string]models.RefreshToken)}
}

func (s *RefreshTokenStore) Create(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token.TokenHash]; ok {
		return repository.ErrDuplicate
	}
	token.CreatedAt = time.Now()
	s.tokens[token.TokenHash] = *token
	return nil
}

func (s *RefreshTokenStore) FindActive(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenHash]
	if !ok || t.Revoked {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *RefreshTokenStore) RevokeByHash(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[tokenHash]; ok {
		t.Revoked = true
		s.tokens[tokenHash] = t
	}
	return nil
}

func (s *RefreshTokenStore) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for hash, t := range s.tokens {
		if t.ExpiresAt.Before(cutoff) {
			delete(s.tokens, hash)
			n++
		}
	}
	return n, nil
}

// Expire moves every stored token's expiry into the past.
func (s *RefreshTokenStore) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash, t := range s.tokens {
		t.ExpiresAt = time.Now().Add(-time.Minute)
		s.tokens[hash] = t
	}
}

type GameStore struct {
	mu    sync.RWMutex
	games map[int]models.Game
}

func NewGameStore(games ...models.Game) *GameStore {
	s := &GameStore{games: make(map[int]models.Game)}
	for _, g := range games {
		s.games[g.ID] = g
	}
	return s
}

// DefaultGames mirrors the default catalog: color 1, memory 2, number 3.
func DefaultGames() []models.Game {
	return []models.Game{
		{ID: 1, Type: scoring.GameColor, Name: "Color Game"},
		{ID: 2, Type: scoring.GameMemory, Name: "Memory Game"},
		{ID: 3, Type: scoring.GameNumber, Name: "Number Game"},
	}
}

func (s *GameStore) Create(_ context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.ID == game.ID || g.Type == game.Type {
			return repository.ErrDuplicate
		}
	}
	game.CreatedAt = time.Now()
	s.games[game.ID] = *game
	return nil
}

func (s *GameStore) Get(_ context.Context, id int) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (s *GameStore) GetByType(_ context.Context, gameType scoring.GameType) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.Type == gameType {
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *GameStore) List(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

type ScoreStore struct {
	mu      sync.RWMutex
	records []models.ScoreRecord
	// Err, when set, is returned by Create.
	Err error
}

func NewScoreStore(records ...models.ScoreRecord) *ScoreStore {
	return &ScoreStore{records: records}
}

func (s *ScoreStore) Create(_ context.Context, record *models.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *ScoreStore) Find(_ context.Context, filter repository.ScoreFilter) ([]models.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScoreRecord, 0)
	for _, r := range s.records {
		if matches(r, filter) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *ScoreStore) Aggregate(_ context.Context, filter repository.ScoreFilter) (repository.ScoreAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var agg repository.ScoreAggregate
	sum := 0.0
	for _, r := range s.records {
		if matches(r, filter) {
			agg.Count++
			sum += r.Score
		}
	}
	if agg.Count > 0 {
		agg.Mean = sum / float64(agg.Count)
	}
	return agg, nil
}

func (s *ScoreStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matches(r models.ScoreRecord, f repository.ScoreFilter) bool {
	if f.UserID != nil && r.UserID != *f.UserID {
		return false
	}
	if f.GameID != nil && r.GameID != *f.GameID {
		return false
	}
	return true
}
