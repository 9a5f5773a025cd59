// Package worker wires the member-check jobs into the River job queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"phishguard/internal/checker"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the member-check worker and starts the River client on the
// given pool. The returned client must be stopped by the caller on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	chk checker.Checker,
	prom *metrics.Prometheus,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewMemberCheckWorker(chk, prom))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
