// Package jobs runs the periodic housekeeping tasks of the server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// LogPruner deletes system log rows older than a cutoff.
type LogPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenPurger deletes refresh tokens that are past their expiry.
type TokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Scheduler struct {
	sched gocron.Scheduler
}

// Start registers the daily log retention job and the hourly refresh
// token purge, then starts the scheduler.
func Start(logs LogPruner, tokens TokenPurger, retentionDays int) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			PruneLogs(context.Background(), logs, retentionDays, time.Now())
		}),
		gocron.WithName("log-retention"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule log retention: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			PurgeTokens(context.Background(), tokens)
		}),
		gocron.WithName("refresh-token-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule token purge: %w", err)
	}

	sched.Start()
	return &Scheduler{sched: sched}, nil
}

func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}

// PruneLogs deletes system logs older than retentionDays before now.
func PruneLogs(ctx context.Context, logs LogPruner, retentionDays int, now time.Time) int64 {
	cutoff := now.AddDate(0, 0, -retentionDays)
	deleted, err := logs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("log cleanup failed", "error", err)
		return 0
	}
	if deleted > 0 {
		slog.Info("log cleanup completed", "deleted", deleted)
	}
	return deleted
}

func PurgeTokens(ctx context.Context, tokens TokenPurger) int64 {
	deleted, err := tokens.PurgeExpired(ctx)
	if err != nil {
		slog.Error("refresh token purge failed", "error", err)
		return 0
	}
	if deleted > 0 {
		slog.Info("expired refresh tokens purged", "deleted", deleted)
	}
	return deleted
}
