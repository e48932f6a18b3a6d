// Package worker runs periodic maintenance against the database.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velastore/vela/internal/jobs"
	"github.com/velastore/vela/internal/repository"
)

// Config holds worker configuration
type Config struct {
	// WorkerID uniquely identifies this worker instance
	WorkerID string

	// Interval is how often the cleanup pass runs
	Interval time.Duration
}

// Worker periodically removes expired guest sessions and their carts.
type Worker struct {
	config Config
	repo   repository.Querier
	logger *slog.Logger
}

// NewWorker creates a maintenance worker
func NewWorker(repo repository.Querier, config Config, logger *slog.Logger) *Worker {
	// Set defaults
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.Interval == 0 {
		config.Interval = time.Hour
	}

	return &Worker{
		config: config,
		repo:   repo,
		logger: logger,
	}
}

// Start runs the cleanup loop until the context is cancelled. One pass runs
// immediately so a restart does not postpone cleanup by a full interval.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("worker starting",
		"worker_id", w.config.WorkerID,
		"interval", w.config.Interval,
	)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.runCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker shutting down", "worker_id", w.config.WorkerID)
			return ctx.Err()

		case <-ticker.C:
			w.runCleanup(ctx)
		}
	}
}

func (w *Worker) runCleanup(ctx context.Context) {
	result, err := jobs.CleanupExpiredGuests(ctx, w.repo)
	if err != nil {
		w.logger.Error("guest cleanup failed",
			"worker_id", w.config.WorkerID,
			"error", err,
		)
		return
	}

	if result.GuestsDeleted > 0 {
		w.logger.Info("guest cleanup completed",
			"worker_id", w.config.WorkerID,
			"guests_deleted", result.GuestsDeleted,
		)
	}
}
