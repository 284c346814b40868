package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cognigames/cogni-backend/internal/models"
	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(token).Error; err != nil {
		return fmt.Errorf("store refresh token: %w", translate(err))
	}
	return nil
}

// FindActive returns the unrevoked token with the given hash.
func (r *RefreshTokenRepository) FindActive(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ?", tokenHash, false).
		First(&token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (r *RefreshTokenRepository) RevokeByHash(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// DeleteExpired removes tokens that expired before the cutoff.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
