package checker

import (
	"context"

	"phishguard/pkg/domain"
)

//go:generate mockgen -package mockchecker -source=interface.go -destination=mock/mockchecker.go *
type Checker interface {
	// CheckMember runs one abuse evaluation for the member and returns the
	// verdict. A verdict is always returned for a completed evaluation; only
	// exemption-store failures surface as errors.
	CheckMember(ctx context.Context, member domain.Member) (domain.CheckedUser, error)
	// Enqueue schedules an asynchronous CheckMember run via the job queue.
	Enqueue(ctx context.Context, member domain.Member) error
}
