package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cognigames/cogni-backend/internal/models"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Resolve loads the user behind a token identity. A token whose user no
// longer exists, or whose username does not match, is unauthorized.
func (s *UserService) Resolve(ctx context.Context, id Identity) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Username != id.Username {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// GetSelf returns the requested user only when it is the caller.
func (s *UserService) GetSelf(ctx context.Context, id Identity, userID uuid.UUID) (*models.User, error) {
	if id.UserID != userID {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
