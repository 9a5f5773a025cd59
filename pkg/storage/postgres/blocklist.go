package postgres

import (
	"context"
	"strings"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

const domainsTable = "domains"

// BulkAddDomains merges hosts into the blocklist. Hosts already present are
// skipped via ON CONFLICT DO NOTHING, and duplicates within the input are
// collapsed before insert, so the operation is idempotent.
func (p *PgSQL) BulkAddDomains(ctx context.Context, hosts []string) error {
	rows := make([]PgDomain, 0, len(hosts))
	seen := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		rows = append(rows, PgDomain{Host: h})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(domainsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not bulk add domains into pg")
	}

	return nil
}

// DomainCount returns the number of distinct hosts in the blocklist.
func (p *PgSQL) DomainCount(ctx context.Context) (int64, error) {
	var count int64
	if _, err := p.Builder.From(domainsTable).
		Select(goqu.COUNT("*")).
		Executor().ScanValContext(ctx, &count); err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not count domains in pg")
	}

	return count, nil
}

// DomainByHost fetches a blocklist entry by host, or nil when absent.
func (p *PgSQL) DomainByHost(ctx context.Context, host string) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("host").Eq(strings.ToLower(host))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch domain from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
