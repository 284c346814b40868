package services

import (
	"context"
	"testing"
	"time"

	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/dto"
	"github.com/cognigames/cogni-backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users   *testutil.UserStore
	refresh *testutil.RefreshTokenStore
	games   *testutil.GameStore
	scores  *testutil.ScoreStore

	tokens   *TokenService
	auth     *AuthService
	userSvc  *UserService
	gameSvc  *GameService
	scoreSvc *ScoreService
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 720 * time.Hour,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:   testutil.NewUserStore(),
		refresh: testutil.NewRefreshTokenStore(),
		games:   testutil.NewGameStore(testutil.DefaultGames()...),
		scores:  testutil.NewScoreStore(),
	}
	cfg := testConfig()
	f.tokens = NewTokenService(cfg)
	f.auth = NewAuthService(f.users, f.refresh, f.tokens, cfg)
	f.userSvc = NewUserService(f.users)
	f.gameSvc = NewGameService(f.games)
	f.scoreSvc = NewScoreService(f.scores, f.gameSvc, f.userSvc)
	return f
}

// register creates a user and returns the identity its access token carries.
func (f *fixture) register(t *testing.T, username string) Identity {
	t.Helper()
	resp, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		Username:  username,
		Password:  "password123",
	})
	require.NoError(t, err)

	id, err := f.tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	return id
}
