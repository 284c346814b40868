package repository

import (
	"context"
	"time"

	"github.com/cognigames/cogni-backend/internal/models"
	"gorm.io/gorm"
)

type SystemLogRepository struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) *SystemLogRepository {
	return &SystemLogRepository{db: db}
}

func (r *SystemLogRepository) CreateBatch(ctx context.Context, entries []models.SystemLog) error {
	return r.db.WithContext(ctx).CreateInBatches(entries, 50).Error
}

func (r *SystemLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
