package services

import (
	"fmt"
	"time"

	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the caller established by a valid access token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// TokenService issues and validates HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTAccessExpiry,
		now:    time.Now,
	}
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Validate parses a bearer token and returns its identity. Any failure,
// including a missing token, an unexpected algorithm or expiry, is
// reported as ErrUnauthorized.
func (s *TokenService) Validate(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, ErrUnauthorized
	}

	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return identityFromToken(token)
}

// identityFromToken reads the subject and username claims of a token that
// has already been verified.
func identityFromToken(token *jwt.Token) (Identity, error) {
	if token == nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}

	if exp, err := claims.GetExpirationTime(); err != nil || exp == nil {
		return Identity{}, fmt.Errorf("%w: missing exp claim", ErrUnauthorized)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("%w: missing sub claim", ErrUnauthorized)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: malformed sub claim", ErrUnauthorized)
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return Identity{}, fmt.Errorf("%w: missing username claim", ErrUnauthorized)
	}

	return Identity{UserID: userID, Username: username}, nil
}
