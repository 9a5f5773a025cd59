package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; the
// insert participates in a surrounding transaction when one is active.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result is
	// false when the job was skipped as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
