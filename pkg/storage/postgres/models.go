package postgres

import (
	"time"

	"phishguard/pkg/domain"
)

type PgDomain struct {
	Host    string    `db:"host"`
	AddedAt time.Time `db:"added_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{
		Host:    p.Host,
		AddedAt: p.AddedAt,
	}
}

type PgExemption struct {
	GuildID   string    `db:"guild_id"`
	Kind      string    `db:"kind"`
	SubjectID string    `db:"subject_id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgExemption) ToDomain() domain.Exemption {
	return domain.Exemption{
		GuildID:   domain.GuildID(p.GuildID),
		Kind:      domain.ExemptionKind(p.Kind),
		SubjectID: domain.Snowflake(p.SubjectID),
	}
}

func (p *PgExemption) FromDomain(e domain.Exemption) {
	*p = PgExemption{
		GuildID:   string(e.GuildID),
		Kind:      string(e.Kind),
		SubjectID: string(e.SubjectID),
	}
}

func pgExemptionsToDomain(rows []PgExemption) []domain.Exemption {
	out := make([]domain.Exemption, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
