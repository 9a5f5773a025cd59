package storage

import (
	"context"

	"phishguard/pkg/domain"
)

// ExemptionStorage manages guild-scoped allow-list entries. Duplicate and
// missing entries surface as serrors kinds (ErrConflict, ErrNotFound) rather
// than being swallowed, so callers decide how to react.
type ExemptionStorage interface {
	// IsExempt reports whether the user, or any of the given roles, is exempt
	// from abuse checking in the guild.
	IsExempt(ctx context.Context,
		guildID domain.GuildID,
		userID domain.UserID,
		roleIDs []domain.RoleID) (bool, error)
	// Exemptions lists exemptions for a guild. When kind is non-empty, only
	// entries of that kind are returned.
	Exemptions(ctx context.Context, guildID domain.GuildID, kind domain.ExemptionKind) ([]domain.Exemption, error)
	// AddExemption inserts a new exemption. Returns serrors.ErrConflict when
	// the (guild, kind, subject) triple already exists.
	AddExemption(ctx context.Context, exemption domain.Exemption) error
	// DeleteExemption removes all exemptions for the subject in the guild,
	// regardless of kind. Returns serrors.ErrNotFound when none exist.
	DeleteExemption(ctx context.Context, guildID domain.GuildID, subjectID domain.Snowflake) error
}
