// Package checker implements the abuse verdict engine: confusable
// normalization and keyword matching on usernames, followed by a perceptual
// avatar similarity check against the checker service, gated by the guild's
// exemption list.
package checker

import (
	"context"
	"fmt"
	"time"

	"phishguard/internal/config"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/similarity"
	"phishguard/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the verdict engine. These settings are typically derived
// from application configuration.
type Options struct {
	// PhashThreshold is the maximum phash distance treated as an avatar match.
	PhashThreshold int
	// AvatarSize is the pixel size requested when resolving avatar URLs.
	AvatarSize int
	// RequestTimeout bounds a single similarity service call. The similarity
	// check is the only unbounded-latency step of an evaluation, so this also
	// bounds the whole check.
	RequestTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PhashThreshold: cfg.Checker.PhashThreshold,
		AvatarSize:     cfg.Checker.AvatarSize,
		RequestTimeout: cfg.Checker.RequestTimeout,
	}
}

// checker is the concrete implementation of the Checker interface.
type checker struct {
	options    Options
	exemptions storage.ExemptionStorage
	jobs       storage.JobStorage
	similarity similarity.Client
	reporter   metrics.Reporter
}

// CheckMember evaluates one member and returns the verdict.
//
// Evaluation proceeds ExemptCheck -> UsernameCheck -> AvatarFetch ->
// SimilarityCheck, short-circuiting at the first stage that clears the
// member. Bot accounts and animated avatars are excluded up front. A verdict
// is always returned; fields not reached by a short-circuit stay false.
func (c *checker) CheckMember(ctx context.Context, m domain.Member) (domain.CheckedUser, error) {
	verdict := domain.CheckedUser{UserID: m.User.ID}

	// animated avatars are excluded from image comparison by policy
	if m.User.Bot || m.User.HasAnimatedAvatar() {
		return verdict, nil
	}

	exempt, err := c.exemptions.IsExempt(ctx, m.GuildID, m.User.ID, m.RoleIDs)
	if err != nil {
		// no silent default here: guessing either way would bias the
		// exemption decision, so the check is skipped and the caller decides
		return verdict, fmt.Errorf("could not check exemptions: %w", err)
	}
	if exempt {
		return verdict, nil
	}

	if !MatchesKeyword(Normalize(m.User.Username)) {
		return verdict, nil
	}
	verdict.MatchedUsername = true

	avatarURL := m.User.AvatarURL(c.options.AvatarSize)
	if avatarURL == "" {
		return verdict, nil
	}

	checkCtx := ctx
	if c.options.RequestTimeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, c.options.RequestTimeout)
		defer cancel()
	}

	res, err := c.similarity.CheckImage(checkCtx, avatarURL)
	if err != nil {
		// fail open for the avatar stage only; the username stage already
		// narrowed the candidate set
		logger.Warn(ctx, "could not check avatar similarity",
			zap.String("userID", string(m.User.ID)),
			zap.String("avatarURL", avatarURL),
			zap.Error(err))

		return verdict, nil
	}

	score := res.PhashDistance
	verdict.SimilarityScore = &score

	if score <= c.options.PhashThreshold {
		verdict.MatchedAvatar = true

		// detached dispatch: reporting never delays or fails the verdict
		go c.reporter.AddAbusiveUser(verdict)
	}

	return verdict, nil
}

// Enqueue schedules an asynchronous member check through the job queue.
func (c *checker) Enqueue(ctx context.Context, m domain.Member) error {
	if _, err := c.jobs.AddJob(ctx, JobArgs{Member: m}, nil); err != nil {
		return fmt.Errorf("could not add member check job: %w", err)
	}

	return nil
}

// New creates a Checker backed by the provided exemption store, job queue,
// similarity client and metrics reporter.
func New(exemptions storage.ExemptionStorage,
	jobs storage.JobStorage,
	similarityClient similarity.Client,
	reporter metrics.Reporter,
	options Options) Checker {
	return &checker{
		options:    options,
		exemptions: exemptions,
		jobs:       jobs,
		similarity: similarityClient,
		reporter:   reporter,
	}
}
