package storage

import (
	"context"

	"phishguard/pkg/domain"
)

// DomainStorage maintains the phishing-domain blocklist. The blocklist is
// append-only from this system's perspective; deletion is an external concern.
type DomainStorage interface {
	// BulkAddDomains merges the given hosts into the blocklist with upsert
	// semantics: hosts already present are left untouched and duplicates within
	// the input are collapsed, so the call is idempotent.
	BulkAddDomains(ctx context.Context, hosts []string) error
	// DomainCount returns the number of distinct hosts in the blocklist.
	DomainCount(ctx context.Context) (int64, error)
	// DomainByHost fetches a blocklist entry by host. Returns nil when the host
	// is not listed.
	DomainByHost(ctx context.Context, host string) (*domain.Domain, error)
}
