package worker

import (
	"context"
	"fmt"
	"time"

	"phishguard/internal/checker"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// MemberCheckWorker is a River worker that runs one abuse evaluation per job.
// Evaluations for distinct members are independent, so the queue may run them
// with whatever parallelism its configuration allows; the engine and its
// collaborators are safe for concurrent use.
//
// Error handling follows the engine's propagation policy: degraded similarity
// checks are already absorbed inside the engine, so an error here means the
// exemption store could not answer and the job should retry.
type MemberCheckWorker struct {
	river.WorkerDefaults[checker.JobArgs]

	// checker runs the actual evaluation.
	checker checker.Checker
	// prom records evaluation latency; may be nil in tests.
	prom *metrics.Prometheus
}

// NewMemberCheckWorker constructs a MemberCheckWorker using the provided checker.
func NewMemberCheckWorker(chk checker.Checker, prom *metrics.Prometheus) *MemberCheckWorker {
	return &MemberCheckWorker{
		checker: chk,
		prom:    prom,
	}
}

// Work executes a single member check job.
func (w *MemberCheckWorker) Work(ctx context.Context, job *river.Job[checker.JobArgs]) error {
	m := job.Args.Member
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("guildID", string(m.GuildID)),
		zap.String("userID", string(m.User.ID)))

	start := time.Now()
	verdict, err := w.checker.CheckMember(ctx, m)
	if w.prom != nil {
		w.prom.ObserveCheckDuration(ctx, time.Since(start), checkOutcome(verdict, err))
	}
	if err != nil {
		logger.Error(ctx, "error checking member", zap.Error(err))

		return fmt.Errorf("could not check member: %w", err)
	}

	if verdict.MatchedAvatar {
		logger.Info(ctx, "abusive member detected",
			zap.Intp("similarityScore", verdict.SimilarityScore))
	} else if verdict.MatchedUsername {
		logger.Debug(ctx, "username matched, avatar did not")
	}

	return nil
}

// checkOutcome maps an evaluation result to the metric outcome label.
func checkOutcome(verdict domain.CheckedUser, err error) string {
	switch {
	case err != nil:
		return "error"
	case verdict.MatchedAvatar:
		return "abusive"
	case verdict.MatchedUsername:
		return "username"
	default:
		return "clean"
	}
}
