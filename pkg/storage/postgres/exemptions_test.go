package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
)

func TestPgSQL_AddExemption_Conflict(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	ex := domain.Exemption{GuildID: "g1", Kind: domain.ExemptionKindUser, SubjectID: "u1"}

	require.NoError(t, pg.AddExemption(ctx, ex))

	err := pg.AddExemption(ctx, ex)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPgSQL_IsExempt(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindUser, SubjectID: "u1",
	}))
	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindRole, SubjectID: "r1",
	}))

	// exempt by user ID
	exempt, err := pg.IsExempt(ctx, "g1", "u1", nil)
	require.NoError(t, err)
	require.True(t, exempt)

	// exempt through a held role
	exempt, err = pg.IsExempt(ctx, "g1", "u2", []domain.RoleID{"r0", "r1"})
	require.NoError(t, err)
	require.True(t, exempt)

	// no matching user or role
	exempt, err = pg.IsExempt(ctx, "g1", "u2", []domain.RoleID{"r0"})
	require.NoError(t, err)
	require.False(t, exempt)

	// exemptions are guild-scoped
	exempt, err = pg.IsExempt(ctx, "g2", "u1", []domain.RoleID{"r1"})
	require.NoError(t, err)
	require.False(t, exempt)

	// a user exemption never matches as a role subject
	exempt, err = pg.IsExempt(ctx, "g1", "u3", []domain.RoleID{"u1"})
	require.NoError(t, err)
	require.False(t, exempt)
}

func TestPgSQL_Exemptions_ListAndFilter(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindUser, SubjectID: "u1",
	}))
	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindRole, SubjectID: "r1",
	}))
	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g2", Kind: domain.ExemptionKindUser, SubjectID: "u9",
	}))

	all, err := pg.Exemptions(ctx, "g1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	users, err := pg.Exemptions(ctx, "g1", domain.ExemptionKindUser)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, domain.Snowflake("u1"), users[0].SubjectID)

	roles, err := pg.Exemptions(ctx, "g1", domain.ExemptionKindRole)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, domain.Snowflake("r1"), roles[0].SubjectID)

	empty, err := pg.Exemptions(ctx, "g3", "")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPgSQL_DeleteExemption(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// the same subject may be exempted under both kinds; delete clears both
	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindUser, SubjectID: "s1",
	}))
	require.NoError(t, pg.AddExemption(ctx, domain.Exemption{
		GuildID: "g1", Kind: domain.ExemptionKindRole, SubjectID: "s1",
	}))

	require.NoError(t, pg.DeleteExemption(ctx, "g1", "s1"))

	remaining, err := pg.Exemptions(ctx, "g1", "")
	require.NoError(t, err)
	require.Empty(t, remaining)

	// deleting again reports not found
	err = pg.DeleteExemption(ctx, "g1", "s1")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
