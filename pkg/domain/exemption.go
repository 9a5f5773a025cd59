package domain

// ExemptionKind discriminates what an exemption's subject refers to.
type ExemptionKind string

const (
	// ExemptionKindUser exempts a single user account.
	ExemptionKindUser ExemptionKind = "USER"
	// ExemptionKindRole exempts every member holding a role.
	ExemptionKindRole ExemptionKind = "ROLE"
)

// Exemption is a guild-scoped allow-list entry excluding a user or role from
// abuse checking. At most one exemption exists per (guild, kind, subject).
type Exemption struct {
	// GuildID scopes the exemption to a guild.
	GuildID GuildID `json:"guildId"`
	// Kind says whether SubjectID names a user or a role.
	Kind ExemptionKind `json:"kind"`
	// SubjectID is the exempted user or role ID.
	SubjectID Snowflake `json:"subjectId"`
}
