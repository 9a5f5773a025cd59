package checker

import (
	"github.com/riverqueue/river"

	"phishguard/pkg/domain"
)

// JobArgs contains the arguments for a member-check job submitted to River.
// The member snapshot carries everything the engine needs, so the worker
// never reaches back to the chat platform.
type JobArgs struct {
	Member domain.Member `json:"member"`
}

// Kind returns the River job kind used to register and dispatch the member-check worker.
func (args JobArgs) Kind() string { return "CheckMemberJob" }

// InsertOpts returns the River options controlling how the job is enqueued.
// Member checks are cheap to retry and verdicts are not persisted, so a small
// retry budget is enough.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
	}
}
