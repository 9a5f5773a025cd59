package postgres

import (
	"context"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

const exemptionsTable = "exemptions"

// IsExempt reports whether the user, or any of the given roles, holds an
// exemption in the guild.
func (p *PgSQL) IsExempt(ctx context.Context,
	guildID domain.GuildID,
	userID domain.UserID,
	roleIDs []domain.RoleID) (bool, error) {
	subjects := []goqu.Expression{
		goqu.And(
			goqu.I("kind").Eq(string(domain.ExemptionKindUser)),
			goqu.I("subject_id").Eq(string(userID)),
		),
	}
	if len(roleIDs) > 0 {
		ids := make([]string, 0, len(roleIDs))
		for _, id := range roleIDs {
			ids = append(ids, string(id))
		}
		subjects = append(subjects, goqu.And(
			goqu.I("kind").Eq(string(domain.ExemptionKindRole)),
			goqu.I("subject_id").In(ids),
		))
	}

	var count int64
	if _, err := p.Builder.From(exemptionsTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.I("guild_id").Eq(string(guildID)),
			goqu.Or(subjects...),
		).
		Executor().ScanValContext(ctx, &count); err != nil {
		return false, serrors.Wrap(serrors.ErrInternal, err, "could not query exemptions in pg")
	}

	return count > 0, nil
}

// Exemptions lists exemptions for a guild, optionally filtered by kind.
func (p *PgSQL) Exemptions(ctx context.Context,
	guildID domain.GuildID,
	kind domain.ExemptionKind) ([]domain.Exemption, error) {
	w := []goqu.Expression{goqu.I("guild_id").Eq(string(guildID))}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}

	var rows []PgExemption
	if err := p.Builder.From(exemptionsTable).
		Where(w...).
		Order(goqu.I("kind").Asc(), goqu.I("subject_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch exemptions from pg")
	}

	return pgExemptionsToDomain(rows), nil
}

// AddExemption inserts a new exemption, returning ErrConflict when the
// (guild, kind, subject) triple already exists.
func (p *PgSQL) AddExemption(ctx context.Context, exemption domain.Exemption) error {
	var row PgExemption
	row.FromDomain(exemption)

	res, err := p.Builder.Insert(exemptionsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not add exemption into pg")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return serrors.With(serrors.ErrConflict, "exemption already exists")
	}

	return nil
}

// DeleteExemption removes all exemptions for the subject in the guild,
// returning ErrNotFound when none exist.
func (p *PgSQL) DeleteExemption(ctx context.Context,
	guildID domain.GuildID,
	subjectID domain.Snowflake) error {
	res, err := p.Builder.Delete(exemptionsTable).
		Where(
			goqu.I("guild_id").Eq(string(guildID)),
			goqu.I("subject_id").Eq(string(subjectID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not delete exemption in pg")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not read affected rows")
	}
	if affected == 0 {
		return serrors.With(serrors.ErrNotFound, "exemption not found")
	}

	return nil
}
